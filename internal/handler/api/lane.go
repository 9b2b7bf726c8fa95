package api

import (
	"html/template"
	"net/http"
	"strings"

	"drivethru/internal/domain/lane"
	resdto "drivethru/internal/handler/dto/response"
	"drivethru/internal/pkg/errs"
	"drivethru/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

var lanePage = template.Must(template.New("lane").Parse(`<!doctype html>
<html>
<head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <title>Lane {{.LaneID}}</title>
</head>
<body>
  <main data-lane-id="{{.LaneID}}" data-expires-at="{{.ExpiresAt}}">
    <h1>Lane {{.LaneID}}</h1>
    <p>Station code</p>
    <div id="code">{{.Code}}</div>
    <p>Expires <time id="expires" datetime="{{.ExpiresAt}}">{{.ExpiresAt}}</time></p>
  </main>
  <script>
    (function () {
      var lane = document.querySelector("main").dataset.laneId;
      setInterval(function () {
        fetch("/lane/" + lane + "/code").then(function (r) { return r.json(); }).then(function (d) {
          document.getElementById("code").textContent = d.code;
          var t = document.getElementById("expires");
          t.textContent = d.expires_at;
          t.setAttribute("datetime", d.expires_at);
        });
      }, 5000);
    })();
  </script>
</body>
</html>
`))

type LaneHandler struct {
	cmds commands.LaneCommands
}

func NewLaneHandler(cmds commands.LaneCommands) *LaneHandler {
	return &LaneHandler{cmds: cmds}
}

// @Summary Lane display page
// @Description HTML page showing the lane's current station code and its expiry
// @Tags lane
// @Produce html
// @Param lane_id path string true "Lane ID (L1 or L2)"
// @Success 200 {string} string "HTML page"
// @Failure 400 {string} string "Use L1 or L2"
// @Router /lane/{lane_id} [get]
func (h *LaneHandler) Page(c *gin.Context) {
	result, err := h.cmds.CurrentCode(c.Request.Context(), strings.ToUpper(c.Param("lane_id")))
	if err != nil {
		if errs.Is(err, lane.ErrInvalidLane) {
			_ = c.Error(err)
			c.String(http.StatusBadRequest, "Use L1 or L2")
			return
		}
		abortWithUsecaseError(c, err)
		return
	}

	c.Render(http.StatusOK, render.HTML{
		Template: lanePage,
		Data:     resdto.FromLaneCodeResult(result),
	})
}

// @Summary Current lane code
// @Description Current station code for polling displays; rotates lazily once expired
// @Tags lane
// @Produce json
// @Param lane_id path string true "Lane ID (L1 or L2)"
// @Success 200 {object} resdto.LaneCodeResponse
// @Failure 400 {object} httperr.Response
// @Router /lane/{lane_id}/code [get]
func (h *LaneHandler) Code(c *gin.Context) {
	result, err := h.cmds.CurrentCode(c.Request.Context(), c.Param("lane_id"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLaneCodeResult(result))
}

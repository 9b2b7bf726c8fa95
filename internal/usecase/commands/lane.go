package commands

import (
	"context"
	"time"

	"drivethru/internal/domain/lane"
	"drivethru/internal/pkg/clock"
	"drivethru/internal/pkg/config"
	"drivethru/internal/pkg/errs"
	"drivethru/internal/usecase/shared"
)

type LaneCommands interface {
	// CurrentCode returns the active code, issuing a fresh one when none exists or it has expired.
	CurrentCode(ctx context.Context, laneID string) (*LaneCodeResult, error)
	// Rotate unconditionally replaces the lane's code.
	Rotate(ctx context.Context, laneID string) (*LaneCodeResult, error)
}

// laneRegistry is the tx-scoped core shared by LaneCommands and connect.
type laneRegistry struct {
	gen   lane.CodeGenerator
	clock clock.Clock
	ttl   time.Duration
}

func newLaneRegistry(gen lane.CodeGenerator, clk clock.Clock, cfg config.LaneConfig) *laneRegistry {
	return &laneRegistry{gen: gen, clock: clk, ttl: cfg.CodeTTL}
}

func (r *laneRegistry) current(ctx context.Context, tx shared.Tx, laneID lane.ID) (*lane.LaneCode, error) {
	code, err := tx.LaneCodes().Find(ctx, laneID)
	switch {
	case err == nil:
		if code.IsActiveAt(r.clock.Now()) {
			return code, nil
		}
	case !errs.Is(err, errs.ErrNotFound):
		return nil, err
	}
	return r.rotate(ctx, tx, laneID)
}

func (r *laneRegistry) rotate(ctx context.Context, tx shared.Tx, laneID lane.ID) (*lane.LaneCode, error) {
	code, err := lane.Issue(laneID, r.gen, r.clock.Now(), r.ttl)
	if err != nil {
		return nil, err
	}
	return code, r.save(ctx, tx, code)
}

// rotateFrom issues codes until one differs from used, so the code that just opened an order is dead.
func (r *laneRegistry) rotateFrom(ctx context.Context, tx shared.Tx, laneID lane.ID, used lane.Code) (*lane.LaneCode, error) {
	for {
		code, err := lane.Issue(laneID, r.gen, r.clock.Now(), r.ttl)
		if err != nil {
			return nil, err
		}
		if code.Code().Equal(used) {
			continue
		}
		return code, r.save(ctx, tx, code)
	}
}

func (r *laneRegistry) save(ctx context.Context, tx shared.Tx, code *lane.LaneCode) error {
	if err := tx.LaneCodes().Save(ctx, code); err != nil {
		return errs.Wrap(err, "save lane code")
	}
	return nil
}

type laneCommandsImpl struct {
	uow      shared.UnitOfWork
	registry *laneRegistry
}

func NewLaneCommands(uow shared.UnitOfWork, gen lane.CodeGenerator, clk clock.Clock, cfg config.Config) LaneCommands {
	return &laneCommandsImpl{uow: uow, registry: newLaneRegistry(gen, clk, cfg.Lane)}
}

func (uc *laneCommandsImpl) CurrentCode(ctx context.Context, laneID string) (*LaneCodeResult, error) {
	return uc.run(ctx, laneID, uc.registry.current)
}

func (uc *laneCommandsImpl) Rotate(ctx context.Context, laneID string) (*LaneCodeResult, error) {
	return uc.run(ctx, laneID, uc.registry.rotate)
}

func (uc *laneCommandsImpl) run(ctx context.Context, rawLaneID string, op func(context.Context, shared.Tx, lane.ID) (*lane.LaneCode, error)) (*LaneCodeResult, error) {
	laneID, err := lane.ParseID(rawLaneID)
	if err != nil {
		return nil, err
	}

	var code *lane.LaneCode
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		code, derr = op(ctx, tx, laneID)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return toLaneCodeResult(code), nil
}

func toLaneCodeResult(code *lane.LaneCode) *LaneCodeResult {
	return &LaneCodeResult{
		LaneID:    code.LaneID(),
		Code:      code.Code().String(),
		ExpiresAt: code.ExpiresAt(),
	}
}

package commands_test

import (
	"time"

	"drivethru/internal/domain/lane"
)

func (s *CommandsTestSuite) TestCurrentCode() {
	s.Run("issues a code on first read and keeps it while active", func() {
		first, err := s.lanes.CurrentCode(s.ctx, "L1")
		s.Require().NoError(err)
		s.Equal(lane.L1, first.LaneID)
		s.Equal("1000", first.Code)
		s.Equal(s.clock.Now().Add(10*time.Minute), first.ExpiresAt)

		s.clock.Add(10*time.Minute - time.Second)
		again, err := s.lanes.CurrentCode(s.ctx, "l1")
		s.Require().NoError(err)
		s.Equal(first, again)
	})

	s.Run("rotates lazily once expired", func() {
		before, err := s.lanes.CurrentCode(s.ctx, "L1")
		s.Require().NoError(err)

		s.clock.Set(before.ExpiresAt)
		after, err := s.lanes.CurrentCode(s.ctx, "L1")
		s.Require().NoError(err)
		s.NotEqual(before.Code, after.Code)
		s.Equal(before.ExpiresAt.Add(10*time.Minute), after.ExpiresAt)
		s.Equal(after.Code, s.fx.LaneCode(s.T(), lane.L1).Code().String())
	})

	s.Run("lanes are independent", func() {
		l1, err := s.lanes.CurrentCode(s.ctx, "L1")
		s.Require().NoError(err)
		l2, err := s.lanes.CurrentCode(s.ctx, "L2")
		s.Require().NoError(err)
		s.NotEqual(l1.Code, l2.Code)
	})

	s.Run("unknown lane", func() {
		_, err := s.lanes.CurrentCode(s.ctx, "L3")
		s.ErrorIs(err, lane.ErrInvalidLane)
	})
}

func (s *CommandsTestSuite) TestRotate() {
	first, err := s.lanes.CurrentCode(s.ctx, "L2")
	s.Require().NoError(err)

	rotated, err := s.lanes.Rotate(s.ctx, "L2")
	s.Require().NoError(err)
	s.NotEqual(first.Code, rotated.Code)

	current, err := s.lanes.CurrentCode(s.ctx, "L2")
	s.Require().NoError(err)
	s.Equal(rotated, current)

	_, err = s.lanes.Rotate(s.ctx, "")
	s.ErrorIs(err, lane.ErrInvalidLane)
}

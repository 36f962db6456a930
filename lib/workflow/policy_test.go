package workflow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"proposal-approval-backend/models"
)

func limit(v int64) *int64 {
	return &v
}

func TestDecideApprovalChain(t *testing.T) {
	t.Run(`accountant approve advances to manager review`, func(t *testing.T) {
		decision, err := Decide(Input{
			ProposalStatus: models.AccountantReview,
			ProposerID:     "user-1",
			Budget:         25_000_000,
			Actor:          Actor{ID: "user-2", Name: "Mai", Role: models.AccountantRole},
			Action:         models.ActionApprove,
			Comment:        "ok",
		})
		require.Nil(t, err)
		require.Equal(t, models.ManagerReview, decision.NewStatus)
		require.Equal(t, models.ManagerReview, decision.Record.Status)
		require.Equal(t, "", decision.RejectionReason)
		require.Equal(t, "user-2", decision.Record.ActorID)
		require.Equal(t, "ok", decision.Record.Comment)
	})

	t.Run(`manager approve advances to director review`, func(t *testing.T) {
		decision, err := Decide(Input{
			ProposalStatus: models.ManagerReview,
			ProposerID:     "user-1",
			Budget:         100_000_000,
			Actor:          Actor{ID: "user-3", Role: models.ManagerRole, ApprovalLimit: limit(200_000_000)},
			Action:         models.ActionApprove,
		})
		require.Nil(t, err)
		require.Equal(t, models.DirectorReview, decision.NewStatus)
	})

	t.Run(`director approve is final`, func(t *testing.T) {
		decision, err := Decide(Input{
			ProposalStatus: models.DirectorReview,
			ProposerID:     "user-1",
			Budget:         100_000_000,
			Actor:          Actor{ID: "user-4", Role: models.DirectorRole, ApprovalLimit: limit(500_000_000)},
			Action:         models.ActionApprove,
		})
		require.Nil(t, err)
		require.Equal(t, models.StatusApproved, decision.NewStatus)
		require.True(t, decision.NewStatus.IsTerminal())
	})

	t.Run(`live status never rests on a reviewed sub-state`, func(t *testing.T) {
		for _, status := range []models.ProposalStatus{models.AccountantReview, models.ManagerReview, models.DirectorReview} {
			actor := Actor{ID: "user-9", Role: models.AccountantRole}
			switch status {
			case models.ManagerReview:
				actor.Role = models.ManagerRole
				actor.ApprovalLimit = limit(1_000_000_000)
			case models.DirectorReview:
				actor.Role = models.DirectorRole
				actor.ApprovalLimit = limit(1_000_000_000)
			}
			decision, err := Decide(Input{
				ProposalStatus: status,
				ProposerID:     "user-1",
				Budget:         1_000,
				Actor:          actor,
				Action:         models.ActionApprove,
			})
			require.Nil(t, err)
			require.True(t, decision.NewStatus.IsResting(), "status %v", decision.NewStatus)
		}
	})
}

func TestDecideRejection(t *testing.T) {
	t.Run(`director reject sets tier rejection and reason`, func(t *testing.T) {
		decision, err := Decide(Input{
			ProposalStatus: models.DirectorReview,
			ProposerID:     "user-1",
			Budget:         50_000_000,
			Actor:          Actor{ID: "user-4", Role: models.DirectorRole, ApprovalLimit: limit(500_000_000)},
			Action:         models.ActionReject,
			Comment:        "Budget insufficient",
		})
		require.Nil(t, err)
		require.Equal(t, models.DirectorRejected, decision.NewStatus)
		require.Equal(t, "Budget insufficient", decision.RejectionReason)
		require.True(t, decision.NewStatus.IsRejection())
	})

	t.Run(`reject requires a comment`, func(t *testing.T) {
		for _, comment := range []string{"", "   ", "\n\t"} {
			_, err := Decide(Input{
				ProposalStatus: models.AccountantReview,
				ProposerID:     "user-1",
				Budget:         1_000_000,
				Actor:          Actor{ID: "user-2", Role: models.AccountantRole},
				Action:         models.ActionReject,
				Comment:        comment,
			})
			require.Equal(t, ErrMissingReason, err)
		}
	})

	t.Run(`accountant and manager rejections map to their own tier`, func(t *testing.T) {
		decision, err := Decide(Input{
			ProposalStatus: models.AccountantReview,
			ProposerID:     "user-1",
			Budget:         1_000_000,
			Actor:          Actor{ID: "user-2", Role: models.AccountantRole},
			Action:         models.ActionReject,
			Comment:        "thiếu chứng từ",
		})
		require.Nil(t, err)
		require.Equal(t, models.AccountantRejected, decision.NewStatus)

		decision, err = Decide(Input{
			ProposalStatus: models.ManagerReview,
			ProposerID:     "user-1",
			Budget:         1_000_000,
			Actor:          Actor{ID: "user-3", Role: models.ManagerRole, ApprovalLimit: limit(10_000_000)},
			Action:         models.ActionReject,
			Comment:        "không cần thiết",
		})
		require.Nil(t, err)
		require.Equal(t, models.ManagerRejected, decision.NewStatus)
	})
}

func TestDecideEligibility(t *testing.T) {
	t.Run(`self approval refused regardless of status`, func(t *testing.T) {
		for status := range map[models.ProposalStatus]struct{}{
			models.AccountantReview: {},
			models.ManagerReview:    {},
			models.DirectorReview:   {},
			models.StatusApproved:   {},
			models.DirectorRejected: {},
		} {
			_, err := Decide(Input{
				ProposalStatus: status,
				ProposerID:     "user-7",
				Budget:         1_000_000,
				Actor:          Actor{ID: "user-7", Role: models.DirectorRole, ApprovalLimit: limit(1_000_000_000)},
				Action:         models.ActionApprove,
			})
			require.Equal(t, ErrSelfApproval, err, "status %v", status)
		}
	})

	t.Run(`empty actor id matching empty proposer id is still self approval`, func(t *testing.T) {
		_, err := Decide(Input{
			ProposalStatus: models.AccountantReview,
			ProposerID:     "",
			Budget:         1_000_000,
			Actor:          Actor{ID: "", Role: models.AccountantRole},
			Action:         models.ActionApprove,
		})
		require.Equal(t, ErrSelfApproval, err)
	})

	t.Run(`staff may never act`, func(t *testing.T) {
		_, err := Decide(Input{
			ProposalStatus: models.AccountantReview,
			ProposerID:     "user-1",
			Budget:         1_000_000,
			Actor:          Actor{ID: "user-5", Role: models.StaffRole},
			Action:         models.ActionApprove,
		})
		require.Equal(t, ErrInvalidState, err)
	})

	t.Run(`role acts only on its own review state`, func(t *testing.T) {
		_, err := Decide(Input{
			ProposalStatus: models.ManagerReview,
			ProposerID:     "user-1",
			Budget:         1_000_000,
			Actor:          Actor{ID: "user-2", Role: models.AccountantRole},
			Action:         models.ActionApprove,
		})
		require.Equal(t, ErrInvalidState, err)

		_, err = Decide(Input{
			ProposalStatus: models.AccountantReview,
			ProposerID:     "user-1",
			Budget:         1_000_000,
			Actor:          Actor{ID: "user-4", Role: models.DirectorRole, ApprovalLimit: limit(1_000_000_000)},
			Action:         models.ActionApprove,
		})
		require.Equal(t, ErrInvalidState, err)
	})

	t.Run(`terminal states allow no action`, func(t *testing.T) {
		for _, status := range []models.ProposalStatus{
			models.StatusApproved, models.StatusRejected,
			models.AccountantRejected, models.ManagerRejected, models.DirectorRejected,
		} {
			_, err := Decide(Input{
				ProposalStatus: status,
				ProposerID:     "user-1",
				Budget:         1_000_000,
				Actor:          Actor{ID: "user-4", Role: models.DirectorRole, ApprovalLimit: limit(1_000_000_000)},
				Action:         models.ActionApprove,
			})
			require.Equal(t, ErrInvalidState, err, "status %v", status)
		}
	})

	t.Run(`budget above approval limit refused`, func(t *testing.T) {
		_, err := Decide(Input{
			ProposalStatus: models.ManagerReview,
			ProposerID:     "user-1",
			Budget:         300_000_000,
			Actor:          Actor{ID: "user-3", Role: models.ManagerRole, ApprovalLimit: limit(200_000_000)},
			Action:         models.ActionApprove,
		})
		require.Equal(t, ErrInsufficientAuthority, err)
	})

	t.Run(`reviewer without configured limit refused`, func(t *testing.T) {
		_, err := Decide(Input{
			ProposalStatus: models.DirectorReview,
			ProposerID:     "user-1",
			Budget:         1_000,
			Actor:          Actor{ID: "user-4", Role: models.DirectorRole},
			Action:         models.ActionApprove,
		})
		require.Equal(t, ErrInsufficientAuthority, err)
	})

	t.Run(`accountant needs no approval limit`, func(t *testing.T) {
		_, err := Decide(Input{
			ProposalStatus: models.AccountantReview,
			ProposerID:     "user-1",
			Budget:         999_000_000_000,
			Actor:          Actor{ID: "user-2", Role: models.AccountantRole},
			Action:         models.ActionApprove,
		})
		require.Nil(t, err)
	})
}

func TestCanAct(t *testing.T) {
	actor := Actor{ID: "user-3", Role: models.ManagerRole, ApprovalLimit: limit(200_000_000)}
	require.True(t, CanAct(models.ManagerReview, "user-1", 150_000_000, actor))
	require.False(t, CanAct(models.ManagerReview, "user-1", 300_000_000, actor))
	require.False(t, CanAct(models.AccountantReview, "user-1", 150_000_000, actor))
	require.False(t, CanAct(models.ManagerReview, "user-3", 150_000_000, actor))
	require.False(t, CanAct(models.ManagerReview, "user-1", 1, Actor{ID: "user-5", Role: models.StaffRole}))
}

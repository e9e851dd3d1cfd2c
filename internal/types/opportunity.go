package types

import (
	ierr "github.com/bizledger/bizledger/internal/errors"
)

// OpportunityStage is the sales pipeline stage of an opportunity.
type OpportunityStage string

const (
	OpportunityStageLead        OpportunityStage = "lead"
	OpportunityStageQualified   OpportunityStage = "qualified"
	OpportunityStageProposal    OpportunityStage = "proposal"
	OpportunityStageNegotiation OpportunityStage = "negotiation"
	OpportunityStageClosedWon   OpportunityStage = "closed_won"
	OpportunityStageClosedLost  OpportunityStage = "closed_lost"
)

func (s OpportunityStage) String() string {
	return string(s)
}

func (s OpportunityStage) Validate() error {
	switch s {
	case OpportunityStageLead, OpportunityStageQualified, OpportunityStageProposal,
		OpportunityStageNegotiation, OpportunityStageClosedWon, OpportunityStageClosedLost:
		return nil
	}
	return ierr.NewError("invalid opportunity stage").
		WithHint("Stage must be one of lead, qualified, proposal, negotiation, closed_won, closed_lost").
		Mark(ierr.ErrValidation)
}

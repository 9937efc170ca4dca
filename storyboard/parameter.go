package storyboard

import (
	"fmt"

	"sbx/common"
)

// ParameterCommand turns a rendering flag on for its duration. Instant
// (zero-length) flags stay on for the whole sprite lifetime.
type ParameterCommand struct {
	param      common.ParameterType
	start, end int
}

func NewParameter(start, end int, param common.ParameterType) (*ParameterCommand, error) {
	if err := checkTimes(common.CommandKindParameter, start, end); err != nil {
		return nil, err
	}
	if !param.IsValid() {
		return nil, fmt.Errorf("%s: %w", common.CommandKindParameter, common.ErrInvalidParameterType)
	}
	return &ParameterCommand{param: param, start: start, end: end}, nil
}

func (p *ParameterCommand) Kind() common.CommandKind        { return common.CommandKindParameter }
func (p *ParameterCommand) StartTime() int                  { return p.start }
func (p *ParameterCommand) EndTime() int                    { return p.end }
func (p *ParameterCommand) Easing() common.Easing           { return common.EasingNone }
func (p *ParameterCommand) Parameter() common.ParameterType { return p.param }
func (p *ParameterCommand) IsInstant() bool                 { return p.start == p.end }

func (p *ParameterCommand) Clip(start, end int) (Command, error) {
	return nil, fmt.Errorf("%w: %s to [%d, %d]", ErrNotClippable, p, start, end)
}

func (p *ParameterCommand) String() string {
	return fmt.Sprintf("%s(%s) [%d, %d]", common.CommandKindParameter, p.param, p.start, p.end)
}

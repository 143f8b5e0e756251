package cli

import (
	"errors"
	"slices"
	"testing"
)

var errScriptExhausted = errors.New("no scripted answer left")

// scriptedPrompter replays canned answers in order. An empty Input answer
// takes the question's default. Answers rejected by a validator are recorded
// and the next answer is used, the way a terminal re-prompts.
type scriptedPrompter struct {
	t        *testing.T
	answers  []any
	asked    []string
	rejected []string
	suggest  func(string) []string
}

func newScriptedPrompter(t *testing.T, answers ...any) *scriptedPrompter {
	return &scriptedPrompter{t: t, answers: answers}
}

func (p *scriptedPrompter) next(message string) (any, error) {
	p.asked = append(p.asked, message)
	if len(p.answers) == 0 {
		return nil, errScriptExhausted
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	if err, ok := answer.(error); ok {
		return nil, err
	}
	return answer, nil
}

func (p *scriptedPrompter) Confirm(message string, def bool) (bool, error) {
	answer, err := p.next(message)
	if err != nil {
		return false, err
	}
	ok, isBool := answer.(bool)
	if !isBool {
		p.t.Fatalf("confirm %q got non-bool answer %v", message, answer)
	}
	return ok, nil
}

func (p *scriptedPrompter) Input(q InputQuestion) (string, error) {
	if q.Suggest != nil {
		p.suggest = q.Suggest
	}
	for {
		answer, err := p.next(q.Message)
		if err != nil {
			return "", err
		}
		s, ok := answer.(string)
		if !ok {
			p.t.Fatalf("input %q got non-string answer %v", q.Message, answer)
		}
		if s == "" {
			s = q.Default
		}
		if q.Validate != nil {
			if err := q.Validate(s); err != nil {
				p.rejected = append(p.rejected, s)
				continue
			}
		}
		return s, nil
	}
}

func (p *scriptedPrompter) Select(message string, options []string) (string, error) {
	answer, err := p.next(message)
	if err != nil {
		return "", err
	}
	s, _ := answer.(string)
	if !slices.Contains(options, s) {
		p.t.Fatalf("select %q: %q is not one of %v", message, s, options)
	}
	return s, nil
}

// Package flow contains the multi-step demo flows built on top of the
// Nadia API client.
package flow

import (
	"context"

	"github.com/apex/log"
	"github.com/pkg/errors"
)

// Outcome is the outcome of a step: either continue or halt with a reason.
type Outcome struct {
	halted bool
	reason string
}

// Continue is the outcome of a step after which the pipeline continues.
func Continue() Outcome {
	return Outcome{}
}

// Halt is the outcome of a step that stops the pipeline.
func Halt(reason string) Outcome {
	return Outcome{halted: true, reason: reason}
}

// Halted returns whether the pipeline must stop.
func (o Outcome) Halted() bool {
	return o.halted
}

// StepFunc is a pipeline step. Returning an error stops the pipeline and
// surfaces the error; returning a halted [Outcome] stops the pipeline
// without any error.
type StepFunc func(ctx context.Context) (Outcome, error)

type step struct {
	name string
	run  StepFunc
}

// Pipeline is a linear sequence of steps.
//
// The zero value is ready to use.
type Pipeline struct {
	steps []step
}

// Then appends a step to the pipeline.
func (p *Pipeline) Then(name string, fn StepFunc) *Pipeline {
	p.steps = append(p.steps, step{name: name, run: fn})
	return p
}

// Report describes how far a pipeline went.
type Report struct {
	// Completed lists the steps that completed.
	Completed []string

	// HaltedAt is the step that halted the pipeline, if any.
	HaltedAt string

	// Reason is the reason why the pipeline halted, if any.
	Reason string
}

// Complete returns whether every step completed.
func (r *Report) Complete() bool {
	return r.HaltedAt == ""
}

// Run runs the steps in order. It stops at the first halted step or at the
// first error. The returned report is never nil.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	report := &Report{}
	for _, s := range p.steps {
		if err := ctx.Err(); err != nil {
			report.HaltedAt = s.name
			return report, err
		}
		log.Debugf("flow: running step %s", s.name)
		outcome, err := s.run(ctx)
		if err != nil {
			report.HaltedAt = s.name
			report.Reason = err.Error()
			return report, errors.Wrapf(err, "%s", s.name)
		}
		if outcome.halted {
			report.HaltedAt = s.name
			report.Reason = outcome.reason
			log.Warnf("%s, stopping", outcome.reason)
			return report, nil
		}
		report.Completed = append(report.Completed, s.name)
	}
	return report, nil
}

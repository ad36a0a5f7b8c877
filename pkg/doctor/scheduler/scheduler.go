// Package scheduler binds resolved checks to host bootstrap stages and drives
// their execution, owning the result collector for the invocation.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"appdoctor/pkg/doctor/check"
	"appdoctor/pkg/doctor/result"
	"appdoctor/pkg/doctor/walk"
	"appdoctor/pkg/util/iostreams"
)

// Bootstrap is what the scheduler needs from the host bootstrap pipeline: the
// installation root and a way to attach one listener per stage. The scheduler
// never blocks waiting for a stage; the host invokes the listeners
// synchronously at the appropriate points.
type Bootstrap interface {
	// Root returns the host installation root directory
	Root() string

	// OnStage registers a listener fired when the bootstrap reaches stage
	OnStage(stage check.Stage, handler check.StageHandler)
}

// Scheduler assigns each resolved check to its declared bootstrap stage,
// triggers execution when the stage fires, and records one result per check.
//
// Execution is single-threaded and stage-ordered: checks sharing a stage run
// together, in resolution order, when that stage's trigger fires. A check
// that errors or panics is contained: its failure becomes an error-status
// record and sibling checks still run.
type Scheduler struct {
	io        iostreams.Interface
	collector *result.Collector

	// resolution is the full resolved check list, in resolution order
	resolution []check.Check

	// groups holds staged checks in resolution order, keyed by stage
	groups map[check.Stage][]check.Check

	// fileChecks are the resolved file checks, fed by the tree walk
	fileChecks []check.FileCheck

	// broken marks checks that already failed during the walk and must not
	// receive further CheckFile calls nor a Run
	broken map[check.Check]bool

	fired map[check.Stage]bool
	bound bool
}

// New creates a scheduler owning a fresh collector.
func New(io iostreams.Interface) *Scheduler {
	return &Scheduler{
		io:        io,
		collector: result.NewCollector(),
		groups:    make(map[check.Stage][]check.Check),
		broken:    make(map[check.Check]bool),
		fired:     make(map[check.Stage]bool),
	}
}

// Bind assigns the resolved checks to their stages and attaches the needed
// stage listeners to the bootstrap. Immediate checks run synchronously before
// Bind returns, since they need no host hook.
//
// One listener is registered per distinct stage actually present in the
// resolved set, never one per check. When at least one file check was
// resolved, the pre-init listener performs the single file-tree walk before
// running that stage's checks; with no file checks, no walk happens at all.
func (s *Scheduler) Bind(ctx context.Context, checks []check.Check, bootstrap Bootstrap) error {
	if s.bound {
		return errors.New("scheduler already bound")
	}
	s.bound = true

	s.resolution = checks

	for _, c := range checks {
		stage := c.Stage().Normalize()

		if fc, ok := c.(check.FileCheck); ok {
			s.fileChecks = append(s.fileChecks, fc)
			// File checks need the walk, which requires the host root
			// to be known. Immediate is too early for them.
			if stage == check.StageImmediate {
				stage = check.StagePreInit
			}
		}

		s.groups[stage] = append(s.groups[stage], c)
	}

	// Immediate checks run now, before the host environment exists.
	s.fired[check.StageImmediate] = true
	s.runGroup(ctx, check.StageImmediate, &check.Target{Root: bootstrap.Root()})

	needed := make(map[check.Stage]bool)
	for stage, group := range s.groups {
		if stage != check.StageImmediate && len(group) > 0 {
			needed[stage] = true
		}
	}
	if len(s.fileChecks) > 0 {
		needed[check.StagePreInit] = true
	}

	root := bootstrap.Root()

	for _, stage := range check.StageOrder {
		if !needed[stage] {
			continue
		}

		bootstrap.OnStage(stage, func(target *check.Target) error {
			s.fired[stage] = true

			if stage == check.StagePreInit && len(s.fileChecks) > 0 {
				if err := s.runWalk(ctx, root); err != nil {
					return err
				}
			}

			s.runGroup(ctx, stage, target)

			return nil
		})
	}

	return nil
}

// Finish must be called after the host bootstrap has returned. Checks whose
// stage trigger never fired are recorded with skipped status, and their
// presence is an invocation-level failure rather than a silent drop.
func (s *Scheduler) Finish() error {
	var skipped []string

	for _, stage := range check.StageOrder {
		if s.fired[stage] {
			continue
		}

		for _, c := range s.groups[stage] {
			if s.broken[c] {
				continue
			}

			s.collector.Record(c.ID(), check.StatusSkipped,
				fmt.Sprintf("host bootstrap never reached stage %s", stage))
			skipped = append(skipped, c.ID())
		}
	}

	if len(skipped) > 0 {
		return fmt.Errorf("%d check(s) never ran: %s", len(skipped), strings.Join(skipped, ", "))
	}

	return nil
}

// Results returns the collected records reordered to resolution order, the
// order the formatter contract requires. Execution happens in stage order, so
// the raw collection order may differ.
func (s *Scheduler) Results() []result.Record {
	all := s.collector.All()

	index := make(map[string]result.Record, len(all))
	for _, r := range all {
		index[r.Name] = r
	}

	out := make([]result.Record, 0, len(all))
	seen := make(map[string]bool, len(all))

	for _, c := range s.resolution {
		r, ok := index[c.ID()]
		if !ok || seen[c.ID()] {
			continue
		}

		out = append(out, r)
		seen[c.ID()] = true
	}

	// Records for names outside the resolution set should not exist, but a
	// misbehaving collector client must not lose them.
	for _, r := range all {
		if !seen[r.Name] {
			out = append(out, r)
			seen[r.Name] = true
		}
	}

	return out
}

// Collector exposes the owned collector for filtered views.
func (s *Scheduler) Collector() *result.Collector {
	return s.collector
}

func (s *Scheduler) runGroup(ctx context.Context, stage check.Stage, target *check.Target) {
	for _, c := range s.groups[stage] {
		if s.broken[c] {
			continue
		}

		s.io.Errorf("running check %s (stage %s)", c.ID(), stage)
		s.runCheck(ctx, c, target)
	}
}

// runCheck executes one check, containing errors and panics as an
// error-status record for that check only.
func (s *Scheduler) runCheck(ctx context.Context, c check.Check, target *check.Target) {
	res, err := func() (res *check.Result, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("check panicked: %v", r)
			}
		}()

		return c.Run(ctx, target)
	}()

	switch {
	case err != nil:
		s.collector.Record(c.ID(), check.StatusError, fmt.Sprintf("check failed: %v", err))
	case res == nil:
		s.collector.Record(c.ID(), check.StatusError, "check produced no result")
	case res.Status.Validate() != nil:
		s.collector.Record(c.ID(), check.StatusError, fmt.Sprintf("check produced invalid status %q", res.Status))
	default:
		s.collector.Record(c.ID(), res.Status, res.Message)
	}
}

// runWalk performs the single post-order traversal of the installation root,
// dispatching each regular file to every file check interested in its
// extension. Extension matching is case-sensitive and exact; files without an
// extension are skipped. A traversal error aborts the whole invocation.
func (s *Scheduler) runWalk(ctx context.Context, root string) error {
	dispatch := make(map[string][]check.FileCheck)
	for _, fc := range s.fileChecks {
		for _, ext := range fc.Extensions() {
			dispatch[ext] = append(dispatch[ext], fc)
		}
	}

	s.io.Errorf("scanning file tree at %s", root)

	err := walk.Walk(root, func(path string, entry fs.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !entry.Type().IsRegular() {
			return nil
		}

		ext := strings.TrimPrefix(filepath.Ext(entry.Name()), ".")
		if ext == "" {
			return nil
		}

		for _, fc := range dispatch[ext] {
			if s.broken[fc] {
				continue
			}

			if err := fc.CheckFile(path, entry); err != nil {
				// The probe is broken, not the invocation: surface it
				// as this check's result and keep scanning for others.
				s.broken[fc] = true
				s.collector.Record(fc.ID(), check.StatusError, fmt.Sprintf("check failed: %v", err))
			}
		}

		return nil
	})
	if err != nil {
		return &check.FileSystemError{Path: root, Err: err}
	}

	return nil
}

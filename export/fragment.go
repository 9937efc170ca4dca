package export

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"sbx/common"
	"sbx/fragment"
	"sbx/storyboard"
)

type stats struct {
	Sprites   int
	Fragments int
}

type job struct {
	layer common.Layer
	obj   storyboard.Object
}

// fragmentStoryboard returns new storyboard with every object replaced by its
// fragments. Objects are processed by up to workers goroutines (0 - one per
// CPU), output keeps input order. Failures of individual objects are combined,
// cancellation stops scheduling of new objects.
func fragmentStoryboard(ctx context.Context, sb *storyboard.Storyboard, fr *fragment.Fragmenter, workers int) (*storyboard.Storyboard, stats, error) {
	var jobs []job
	for layer, objs := range sb.Layers() {
		for _, obj := range objs {
			jobs = append(jobs, job{layer: layer, obj: obj})
		}
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([][]storyboard.Object, len(jobs))
	errs := make([]error, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			objs, err := fr.Fragment(j.obj)
			if err != nil {
				errs[i] = fmt.Errorf("%s object %d: %w", j.layer, i, err)
				return nil
			}
			results[i] = objs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, stats{}, err
	}
	// parent context may be canceled after last job was scheduled
	if err := ctx.Err(); err != nil {
		return nil, stats{}, err
	}
	if err := multierr.Combine(errs...); err != nil {
		return nil, stats{}, err
	}

	out := storyboard.New(sb.ID, sb.Name)
	st := stats{Sprites: len(jobs)}
	for i, j := range jobs {
		for _, obj := range results[i] {
			out.Add(j.layer, obj)
		}
		st.Fragments += len(results[i])
	}
	return out, st, nil
}

package transition_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrymomot/statusguard/pkg/transition"
)

func BenchmarkValidator_Validate(b *testing.B) {
	ctx := context.Background()
	table := transition.MustBuild(
		transition.NewRule(StatusA, []transition.State{StatusB}, transition.OnSuccess(StatusB, noop)),
		transition.NewRule(StatusB, []transition.State{StatusC}),
	)
	v := transition.MustNewValidator("status", table)
	rec := &record{}

	for b.Loop() {
		_ = v.Validate(ctx, StatusA, StatusB, rec)
	}
}

func BenchmarkValidator_ValidateInvalid(b *testing.B) {
	ctx := context.Background()
	table := transition.MustBuild(
		transition.NewRule(StatusA, []transition.State{StatusB}, transition.OnError(noop)),
	)
	v := transition.MustNewValidator("status", table)

	for b.Loop() {
		_ = v.Validate(ctx, StatusA, StatusC, &record{})
	}
}

func BenchmarkValidator_ConcurrentReads(b *testing.B) {
	ctx := context.Background()
	table := transition.MustBuild(transition.NewRule(StatusA, []transition.State{StatusB}))
	v := transition.MustNewValidator("status", table)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		rec := &record{}
		for pb.Next() {
			_ = v.Validate(ctx, StatusA, StatusB, rec)
		}
	})
}

func BenchmarkBuild_LargeTable(b *testing.B) {
	states := make([]transition.State, 50)
	for i := range states {
		states[i] = transition.StringState(fmt.Sprintf("state%d", i))
	}

	rules := make([]transition.Rule, 0, len(states))
	for i, from := range states {
		to := []transition.State{states[(i+1)%len(states)], states[(i+7)%len(states)]}
		rules = append(rules, transition.NewRule(from, to, transition.OnError(noop)))
	}

	for b.Loop() {
		_ = transition.MustBuild(rules...)
	}
}

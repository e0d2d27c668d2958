package countdown

import (
	"context"
	"testing"
	"time"
)

func TestUntil(t *testing.T) {
	target := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want Remaining
	}{
		{
			// 86400+3600+60+1 seconds out
			name: "one of each unit",
			now:  target.Add(-90061 * time.Second),
			want: Remaining{Days: 1, Hours: 1, Minutes: 1, Seconds: 1},
		},
		{
			name: "ten days",
			now:  target.AddDate(0, 0, -10),
			want: Remaining{Days: 10},
		},
		{
			name: "under a minute",
			now:  target.Add(-59 * time.Second),
			want: Remaining{Seconds: 59},
		},
		{
			name: "one second",
			now:  target.Add(-time.Second),
			want: Remaining{Seconds: 1},
		},
		{
			name: "exactly now",
			now:  target,
			want: Remaining{Arrived: true},
		},
		{
			name: "already past",
			now:  target.Add(48 * time.Hour),
			want: Remaining{Arrived: true},
		},
		{
			name: "sub-second remainder floors to zero",
			now:  target.Add(-500 * time.Millisecond),
			want: Remaining{Arrived: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Until(target, tt.now); got != tt.want {
				t.Errorf("Until() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUntilIdempotent(t *testing.T) {
	target := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	now := target.Add(-90061 * time.Second)

	if Until(target, now) != Until(target, now) {
		t.Error("identical inputs gave different results")
	}
}

func TestTickerStopsOnArrival(t *testing.T) {
	// Fake clock jumps past the target on the second reading
	base := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	readings := []time.Time{base.Add(-2 * time.Second), base.Add(time.Second)}
	i := 0
	clock := func() time.Time {
		r := readings[i]
		if i < len(readings)-1 {
			i++
		}
		return r
	}

	tk := NewTicker(base, time.Millisecond, clock)
	defer tk.Stop()

	var got []Remaining
	for r := range tk.Run(context.Background()) {
		got = append(got, r)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(got))
	}
	if got[0].Arrived {
		t.Error("first snapshot should not have arrived")
	}
	if !got[1].Arrived {
		t.Error("final snapshot should have arrived")
	}
}

func TestTickerStop(t *testing.T) {
	tk := NewTicker(time.Now().Add(time.Hour), time.Millisecond, nil)

	ch := tk.Run(context.Background())
	<-ch // initial snapshot
	tk.Stop()
	tk.Stop() // second stop must not panic

	select {
	case _, ok := <-ch:
		for ok {
			_, ok = <-ch
		}
	case <-time.After(time.Second):
		t.Fatal("channel did not close after Stop")
	}
}

func TestTickerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tk := NewTicker(time.Now().Add(time.Hour), time.Millisecond, nil)
	defer tk.Stop()

	ch := tk.Run(ctx)
	<-ch
	cancel()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel did not close after context cancellation")
		}
	}
}

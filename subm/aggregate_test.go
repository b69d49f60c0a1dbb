package subm

import (
	"testing"

	"github.com/ofast-team/backend/judge"
	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		statuses []judge.Status
		want     Result
	}{
		{
			name: "finished with failure",
			statuses: []judge.Status{
				{ID: 3, Time: 0.01, Memory: 900},
				{ID: 3, Time: 0.2, Memory: 1200},
				{ID: 5, Time: 1.0, Memory: 800},
			},
			want: Result{Verdict: 5, VerdictList: []int{3, 3, 5}, PassedCases: 2, Pending: false, Time: 1.0, Memory: 1200},
		},
		{
			name:     "still queued",
			statuses: []judge.Status{{ID: 1}, {ID: 3, Time: 0.5, Memory: 10}},
			want:     Result{Verdict: 3, VerdictList: []int{1, 3}, PassedCases: 1, Pending: true, Time: 0.5, Memory: 10},
		},
		{
			name:     "all accepted",
			statuses: []judge.Status{{ID: 3}, {ID: 3}},
			want:     Result{Verdict: 3, VerdictList: []int{3, 3}, PassedCases: 2},
		},
		{
			name:     "unknown entry is unfinished",
			statuses: []judge.Status{{ID: 0}, {ID: 4}},
			want:     Result{Verdict: 4, VerdictList: []int{0, 4}, Pending: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.statuses))
		})
	}
}

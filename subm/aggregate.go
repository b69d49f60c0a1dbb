package subm

import "github.com/ofast-team/backend/judge"

// Aggregate folds per-case statuses into one result. The verdict is the
// highest status id, the result stays pending while any case is unfinished.
func Aggregate(statuses []judge.Status) Result {
	res := Result{VerdictList: make([]int, 0, len(statuses))}
	for _, st := range statuses {
		if st.ID == judge.StatusAccepted {
			res.PassedCases++
		}
		if !judge.IsFinished(st.ID) {
			res.Pending = true
		}
		res.Verdict = max(res.Verdict, st.ID)
		res.VerdictList = append(res.VerdictList, st.ID)
		res.Time = max(res.Time, st.Time)
		res.Memory = max(res.Memory, st.Memory)
	}
	return res
}

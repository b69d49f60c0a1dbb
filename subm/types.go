package subm

import "time"

// AdHocProblemID marks submissions judged against request supplied cases.
const AdHocProblemID = "-1"

// InitialVerdict is the judge "In Queue" status, stored until the first poll.
const InitialVerdict = 1

type Submission struct {
	ID          string    `dynamo:"id,hash" json:"id"`
	UID         string    `dynamo:"uid" index:"uid-index,hash" json:"uid"`
	SourceCode  string    `dynamo:"source_code" json:"source_code"`
	Language    string    `dynamo:"language" json:"language"`
	Tokens      []string  `dynamo:"tokens" json:"tokens"`
	ProblemID   string    `dynamo:"problem_id" json:"problem_id"`
	CreatedAt   time.Time `dynamo:"date" json:"date"`
	Pending     bool      `dynamo:"pending" json:"pending"`
	Verdict     int       `dynamo:"verdict" json:"verdict"`
	VerdictList []int     `dynamo:"verdict_list" json:"verdict_list"`
	PassedCases int       `dynamo:"passed_cases" json:"passed_cases"`
	TotalCases  int       `dynamo:"total_cases" json:"total_cases"`
	Time        float64   `dynamo:"time" json:"time"`     // seconds
	Memory      int       `dynamo:"memory" json:"memory"` // kilobytes
	Version     int       `dynamo:"version" json:"-"`
}

func (s *Submission) IsAdHoc() bool {
	return s.ProblemID == AdHocProblemID
}

// Result is the aggregate of one poll. It replaces the stored result
// fields wholesale.
type Result struct {
	Verdict     int
	VerdictList []int
	PassedCases int
	Pending     bool
	Time        float64
	Memory      int
}

type SubmitParams struct {
	UID        string
	SourceCode string // base64
	Language   string // language tag, see languages.go
	Inputs     []string
	Outputs    []string
	// ProblemID selects problem mode. Inputs, Outputs and the limits below
	// are then taken from the problem.
	ProblemID   string
	TimeLimit   int // seconds, <= 0 means default
	MemoryLimit int // megabytes, <= 0 means default
}

func (p SubmitParams) isAdHoc() bool {
	return p.ProblemID == "" || p.ProblemID == AdHocProblemID
}

// ProblemSubmissions groups one user's submissions to one problem.
type ProblemSubmissions struct {
	ProblemID   string
	IsSubmitted bool
	IsAccepted  bool
	Submissions []Submission // newest first, nil in brief mode
}

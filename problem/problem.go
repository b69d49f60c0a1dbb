package problem

// Problem is a published catalog entry. Immutable once published.
type Problem struct {
	ID          string `dynamo:"problem_id,hash" dynamodbav:"problem_id" json:"problemID"`
	Name        string `dynamo:"name" dynamodbav:"name" json:"name"`
	Text        string `dynamo:"text" dynamodbav:"text" json:"text"`
	TimeLimit   int    `dynamo:"time_limit" dynamodbav:"time_limit" json:"timeLimit"`       // seconds
	MemoryLimit int    `dynamo:"memory_limit" dynamodbav:"memory_limit" json:"memoryLimit"` // megabytes
}

// Limits are the resource limits declared for a problem, before clamping.
type Limits struct {
	TimeLimit   int // seconds
	MemoryLimit int // megabytes
}

// TestCase is one (input, expected output) pair.
type TestCase struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

package problem

// problemDataRow holds the ordered test cases of a problem. Small cases are
// stored inline, large ones as zstd compressed objects in the test file bucket.
type problemDataRow struct {
	ProblemID string        `dynamo:"problem_id,hash"`
	Data      []testCaseRow `dynamo:"data"`
}

type testCaseRow struct {
	Input     string  `dynamo:"input"`
	Output    string  `dynamo:"output"`
	InputKey  *string `dynamo:"input_key"`  // s3 key, overrides Input
	OutputKey *string `dynamo:"output_key"` // s3 key, overrides Output
}

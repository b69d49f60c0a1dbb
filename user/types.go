package user

import "time"

type User struct {
	UID               string   `json:"uid"`
	Email             string   `json:"email"`
	Username          string   `json:"username,omitempty"`
	Name              string   `json:"name,omitempty"`
	School            string   `json:"school,omitempty"`
	ProblemsAttempted []string `json:"problemsAttempted"`
	ProblemsAccepted  []string `json:"problemsAccepted"`
	ProblemsWrong     []string `json:"problemsWrong"`
	ProblemsTLE       []string `json:"problemsTLE"`
	ProblemsRTE       []string `json:"problemsRTE"`
}

// userRow is the UserData table item. Problem statistics are string sets.
type userRow struct {
	UID       string    `dynamo:"uid,hash"`
	Email     string    `dynamo:"email" index:"email-index,hash"`
	BcryptPwd []byte    `dynamo:"bcrypt_pwd"`
	Username  string    `dynamo:"username"`
	Name      string    `dynamo:"name"`
	School    string    `dynamo:"school"`
	Attempted []string  `dynamo:"problems_attempted,set,omitempty"`
	Accepted  []string  `dynamo:"problems_accepted,set,omitempty"`
	Wrong     []string  `dynamo:"problems_wrong,set,omitempty"`
	TLE       []string  `dynamo:"problems_tle,set,omitempty"`
	RTE       []string  `dynamo:"problems_rte,set,omitempty"`
	CreatedAt time.Time `dynamo:"created_at"`
}

func (r *userRow) toUser() *User {
	return &User{
		UID:               r.UID,
		Email:             r.Email,
		Username:          r.Username,
		Name:              r.Name,
		School:            r.School,
		ProblemsAttempted: nonNil(r.Attempted),
		ProblemsAccepted:  nonNil(r.Accepted),
		ProblemsWrong:     nonNil(r.Wrong),
		ProblemsTLE:       nonNil(r.TLE),
		ProblemsRTE:       nonNil(r.RTE),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Profile fields that UpdateUserData may change.
const (
	FieldEmail    = "email"
	FieldUsername = "username"
	FieldName     = "name"
	FieldSchool   = "school"
)

// Problem statistic sets.
const (
	StatAttempted = "problems_attempted"
	StatAccepted  = "problems_accepted"
	StatWrong     = "problems_wrong"
	StatTLE       = "problems_tle"
	StatRTE       = "problems_rte"
)

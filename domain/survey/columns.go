package survey

// Column names of the arts faculty survey export. Columns are addressed
// through these constants and the Schema below rather than ad-hoc literals.
const (
	ColGender = "Gender"

	ColExpectationEducation   = "Q1 [What was your expectation about the University as related to quality of education?]"
	ColExpectationFaculty     = "Q2 [What was your expectation about the University as related to quality of Faculty?]"
	ColExpectationResources   = "Q3 [What was your expectation about the University as related to quality of resources?]"
	ColExpectationEnvironment = "Q4 [What was your expectation about the University as related to quality of learning environment?]"
	ColExpectationMet         = "Q5 [To what extent your expectation was met?]"

	ColBestAspect = "Q7. In your opinion,the best aspect of the program is"

	ColEducationImproved = "Do you feel that the quality of education improved at EU over the last year?"
	ColImageImproved     = "Do you feel that the image of the University improved over the last year?"

	// Likert column groups addressed by prefix
	PrefixAreaEvaluation = "Area of Evaluation"
	PrefixItem           = "Item"
)

// ExpectationColumns are the four initial-expectation Likert columns (Q1-Q4).
var ExpectationColumns = []string{
	ColExpectationEducation,
	ColExpectationFaculty,
	ColExpectationResources,
	ColExpectationEnvironment,
}

// ImprovementColumns are the yes/no improvement perception questions.
var ImprovementColumns = []string{
	ColEducationImproved,
	ColImageImproved,
}

// SemesterColumn maps one GPA column to its compact semester tag.
type SemesterColumn struct {
	Column string
	Tag    string
}

// SemesterColumns lists the 12 GPA columns in canonical semester order.
// The order here is the plotting order; a semester column missing from this
// list never reaches the trend chart.
var SemesterColumns = []SemesterColumn{
	{"1st Year Semester 1", "1Y S1"},
	{"1st Year Semester 2", "1Y S2"},
	{"1st Year Semester 3", "1Y S3"},
	{"2nd Year Semester 1", "2Y S1"},
	{"2nd Year Semester 2", "2Y S2"},
	{"2nd Year Semester 3", "2Y S3"},
	{"3rd Year Semester 1", "3Y S1"},
	{"3rd Year Semester 2", "3Y S2"},
	{"3rd Year Semester 3", "3Y S3"},
	{"4th Year Semester 1", "4Y S1"},
	{"4th Year Semester 2", "4Y S2"},
	{"4th Year Semester 3", "4Y S3"},
}

package constant

const (
	FeedbackSourceDigital = "digital"
	FeedbackSourcePaper   = "paper"
)

const (
	RatingMin = 1
	RatingMax = 5
)

const DefaultClassDurationMinutes = 60

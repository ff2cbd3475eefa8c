package domain

// Enquiry is a booking enquiry submitted through the public contact form.
// Price is the quoted total carried over from the trip planner, if any.
type Enquiry struct {
	Name    string
	Email   string
	Phone   string
	Message string
	Price   int64
}

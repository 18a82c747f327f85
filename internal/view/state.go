package view

// AdminState tracks the aggregate view's filter and pagination inputs.
// Changing the query or the day selector resets pagination to page 1;
// that contract belongs to whoever exposes the filters, not to the
// pipeline, and this type is where it is enforced.
type AdminState struct {
	query string
	day   string
	page  int
}

// NewAdminState starts on page 1 with no filters.
func NewAdminState() *AdminState {
	return &AdminState{page: 1}
}

// SetQuery updates the free-text query. A changed value resets to page 1.
func (s *AdminState) SetQuery(q string) {
	if q != s.query {
		s.query = q
		s.page = 1
	}
}

// SetDay updates the calendar-day selector. A changed value resets to page 1.
func (s *AdminState) SetDay(day string) {
	if day != s.day {
		s.day = day
		s.page = 1
	}
}

// SetPage moves to page n, clamped to [1, max(totalPages, 1)].
func (s *AdminState) SetPage(n, totalPages int) {
	if totalPages < 1 {
		totalPages = 1
	}
	if n < 1 {
		n = 1
	}
	if n > totalPages {
		n = totalPages
	}
	s.page = n
}

func (s *AdminState) Query() string { return s.query }
func (s *AdminState) Day() string   { return s.day }
func (s *AdminState) Page() int     { return s.page }

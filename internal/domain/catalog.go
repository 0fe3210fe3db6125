package domain

// Category группа услуг салона
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	IsActive    bool   `json:"isActive"`
}

// Service услуга салона
type Service struct {
	ID              int64   `json:"id"`
	CategoryID      int64   `json:"categoryId"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	ImageURL        string  `json:"imageUrl,omitempty"`
	IsActive        bool    `json:"isActive"`
}

// Room кабинет, в котором оказываются услуги
type Room struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	IsActive bool   `json:"isActive"`
}

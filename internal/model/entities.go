package model

import "time"

// User is a platform account row.
type User struct {
	ID        string
	Email     string
	Gender    Gender
	BirthDate *time.Time
	CreatedAt time.Time
}

// AgeAt returns the user's age at the given instant and whether it is known.
func (u User) AgeAt(t time.Time) (int, bool) {
	if u.BirthDate == nil {
		return 0, false
	}
	age := t.Year() - u.BirthDate.Year()
	if t.YearDay() < u.BirthDate.YearDay() {
		age--
	}
	return age, true
}

// Channel is a streaming channel row.
type Channel struct {
	ID   string
	Name string
}

// Program is a program row; ChannelName is filled on joined reads.
type Program struct {
	ID          string
	Name        string
	ChannelID   string
	ChannelName string
}

// Subscription links a user to a program. Channel membership is derived
// through the program join; ProgramName/ChannelName are filled on joined
// reads.
type Subscription struct {
	ID          string
	UserID      string
	ProgramID   string
	ProgramName string
	ChannelName string
	Active      bool
	CreatedAt   time.Time
}

package employee

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Employee is a single personnel record. The JSON field names are the wire
// and storage format of the collection and must not change.
type Employee struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Gender       Gender    `json:"gender"`
	DateOfBirth  string    `json:"dateOfBirth"`
	ProfileImage string    `json:"profileImage"`
	State        string    `json:"state"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// States is the fixed set of administrative regions a record may belong to.
var States = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand",
	"Karnataka", "Kerala", "Madhya Pradesh", "Maharashtra", "Manipur",
	"Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab",
	"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura",
	"Uttar Pradesh", "Uttarakhand", "West Bengal",
	"Andaman and Nicobar Islands", "Chandigarh", "Dadra and Nagar Haveli and Daman and Diu",
	"Delhi", "Jammu and Kashmir", "Ladakh", "Lakshadweep", "Puducherry",
}

func ValidState(state string) bool {
	for _, s := range States {
		if s == state {
			return true
		}
	}
	return false
}

// SeedEmployees returns the example records used to populate an empty store
// on first run. Callers get a fresh slice on every call.
func SeedEmployees() []Employee {
	return []Employee{
		{
			ID:           "1",
			FullName:     "Rahul Sharma",
			Gender:       GenderMale,
			DateOfBirth:  "1990-05-15",
			ProfileImage: "https://ui-avatars.com/api/?name=Rahul+Sharma&background=4f46e5&color=fff&size=150",
			State:        "Maharashtra",
			IsActive:     true,
			CreatedAt:    time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:           "2",
			FullName:     "Priya Patel",
			Gender:       GenderFemale,
			DateOfBirth:  "1988-08-22",
			ProfileImage: "https://ui-avatars.com/api/?name=Priya+Patel&background=ec4899&color=fff&size=150",
			State:        "Gujarat",
			IsActive:     true,
			CreatedAt:    time.Date(2024, time.January, 16, 14, 20, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, time.January, 16, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:           "3",
			FullName:     "Amit Kumar",
			Gender:       GenderMale,
			DateOfBirth:  "1995-03-10",
			ProfileImage: "https://ui-avatars.com/api/?name=Amit+Kumar&background=10b981&color=fff&size=150",
			State:        "Delhi",
			IsActive:     false,
			CreatedAt:    time.Date(2024, time.January, 17, 9, 0, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, time.January, 17, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:           "4",
			FullName:     "Sneha Reddy",
			Gender:       GenderFemale,
			DateOfBirth:  "1992-11-28",
			ProfileImage: "https://ui-avatars.com/api/?name=Sneha+Reddy&background=f59e0b&color=fff&size=150",
			State:        "Karnataka",
			IsActive:     true,
			CreatedAt:    time.Date(2024, time.January, 18, 11, 45, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, time.January, 18, 11, 45, 0, 0, time.UTC),
		},
		{
			ID:           "5",
			FullName:     "Vikram Singh",
			Gender:       GenderMale,
			DateOfBirth:  "1985-07-04",
			ProfileImage: "https://ui-avatars.com/api/?name=Vikram+Singh&background=6366f1&color=fff&size=150",
			State:        "Punjab",
			IsActive:     true,
			CreatedAt:    time.Date(2024, time.January, 19, 16, 30, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, time.January, 19, 16, 30, 0, 0, time.UTC),
		},
		{
			ID:           "6",
			FullName:     "Anjali Gupta",
			Gender:       GenderFemale,
			DateOfBirth:  "1993-02-14",
			ProfileImage: "https://ui-avatars.com/api/?name=Anjali+Gupta&background=8b5cf6&color=fff&size=150",
			State:        "Uttar Pradesh",
			IsActive:     false,
			CreatedAt:    time.Date(2024, time.January, 20, 8, 15, 0, 0, time.UTC),
			UpdatedAt:    time.Date(2024, time.January, 20, 8, 15, 0, 0, time.UTC),
		},
	}
}

package models

import "github.com/golang-jwt/jwt/v4"

type AuthorizationToken struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}

type CustomClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	// LoginTime ties the token to the session it was issued with.
	LoginTime int64 `json:"loginTime"`
	jwt.RegisteredClaims
}

type PropertyType string

const (
	Villa     PropertyType = "villa"
	Apartment PropertyType = "apartment"
	House     PropertyType = "house"
	Studio    PropertyType = "studio"
)

var PropertyTypes = []PropertyType{Villa, Apartment, House, Studio}

func (t PropertyType) IsValid() bool {
	for _, v := range PropertyTypes {
		if t == v {
			return true
		}
	}
	return false
}

type Status string

const (
	Available Status = "available"
	Sold      Status = "sold"
	Pending   Status = "pending"
)

type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Property struct {
	Id          string       `json:"id"`
	Title       string       `json:"title"`
	Location    string       `json:"location"`
	Price       int64        `json:"price"`
	Size        string       `json:"size"`
	Bedrooms    int          `json:"bedrooms"`
	Bathrooms   int          `json:"bathrooms"`
	Type        PropertyType `json:"type"`
	Images      []string     `json:"images"`
	Description string       `json:"description"`
	Amenities   []string     `json:"amenities"`
	Contact     Contact      `json:"contact"`
	Featured    bool         `json:"featured"`
	Status      Status       `json:"status"`
	Coordinates Coordinates  `json:"coordinates"`
	YearBuilt   int          `json:"yearBuilt"`
	Parking     bool         `json:"parking"`
	Furnished   bool         `json:"furnished"`
}

// AdminRole is the only role a session can carry.
const AdminRole = "admin"

type AdminUser struct {
	Username  string `json:"username"`
	Role      string `json:"role"`
	LoginTime int64  `json:"loginTime"`
}

// Session is the persisted authentication record. Times are epoch milliseconds.
type Session struct {
	User      *AdminUser `json:"user"`
	Timestamp int64      `json:"timestamp"`
}

type PendingSubmission struct {
	Id          string       `json:"id"`
	Title       string       `json:"title"`
	Location    string       `json:"location"`
	SubmittedBy string       `json:"submittedBy"`
	SubmittedAt string       `json:"submittedAt"`
	Status      Status       `json:"status"`
	Type        PropertyType `json:"type"`
	Price       int64        `json:"price"`
}

type Confirmation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Destructive bool   `json:"destructive"`
}

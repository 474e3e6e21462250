package deals

import (
	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/geo"
	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/votes"
)

// --------------------------------------------------
// ENUMS
// --------------------------------------------------

type DealType string

const (
	TypeBOGO     DealType = "BOGO"
	TypeFree     DealType = "FREE"
	TypeDiscount DealType = "DISCOUNT"
	TypeOther    DealType = "OTHER"
)

type ApplicableGroup string

const (
	GroupUnder18       ApplicableGroup = "UNDER_18"
	GroupStudent       ApplicableGroup = "STUDENT"
	GroupSenior        ApplicableGroup = "SENIOR"
	GroupLoyaltyMember ApplicableGroup = "LOYALTY_MEMBER"
	GroupNewUser       ApplicableGroup = "NEW_USER"
	GroupBirthday      ApplicableGroup = "BIRTHDAY"
	GroupEveryone      ApplicableGroup = "EVERYONE"
)

// --------------------------------------------------
// RESTAURANT (READ MODEL)
// --------------------------------------------------

type Restaurant struct {
	ID             string    `json:"id"`
	PlaceID        string    `json:"place_id"`
	Name           string    `json:"restaurant_name"`
	DisplayAddress string    `json:"display_address"`
	Coordinates    geo.Point `json:"coordinates"`
	ImageURL       *string   `json:"image_url,omitempty"`
}

// --------------------------------------------------
// DEAL (WIRE SHAPE, TIMESTAMPS IN EPOCH MILLIS)
// --------------------------------------------------

type Deal struct {
	ID              string          `json:"id"`
	Item            string          `json:"item"`
	Description     *string         `json:"description,omitempty"`
	Type            DealType        `json:"type"`
	Price           *float64        `json:"price,omitempty"`
	UserID          string          `json:"user_id"`
	DatePosted      *int64          `json:"date_posted,omitempty"`
	ExpiryDate      *int64          `json:"expiry_date,omitempty"`
	ImageID         *string         `json:"image_id,omitempty"`
	ApplicableGroup ApplicableGroup `json:"applicable_group,omitempty"`
	DailyStartTimes []int32         `json:"daily_start_times,omitempty"`
	DailyEndTimes   []int32         `json:"daily_end_times,omitempty"`
	NumUpvote       int             `json:"num_upvote"`
	NumDownvote     int             `json:"num_downvote"`
	UserVote        votes.Type      `json:"user_vote"`
	UserSaved       bool            `json:"user_saved"`
}

// RestaurantDeals is the nested response shape: a restaurant plus its visible
// deals. Recomputed per request, never persisted. The "Deal" key is what the
// mobile client expects.
type RestaurantDeals struct {
	ID             string    `json:"id"`
	PlaceID        string    `json:"place_id"`
	RestaurantName string    `json:"restaurant_name"`
	DisplayAddress string    `json:"display_address"`
	Coordinates    geo.Point `json:"coordinates"`
	ImageURL       *string   `json:"image_url,omitempty"`
	Deals          []Deal    `json:"Deal"`
}

// --------------------------------------------------
// DEAL ROW (DENORMALIZED JOIN, TIMESTAMPS AS STORED)
// --------------------------------------------------

// DealRow is one row of the restaurant x deal join as it comes back from the
// store: restaurant fields repeated per deal, timestamps still in their
// storage (ISO-8601 string) form, per-user annotations already joined in.
type DealRow struct {
	RestaurantID       string
	PlaceID            string
	RestaurantName     string
	DisplayAddress     string
	Latitude           float64
	Longitude          float64
	RestaurantImageURL *string

	DealID          string
	Item            string
	Description     *string
	Type            DealType
	Price           *float64
	UserID          string
	DatePosted      string
	ExpiryDate      *string
	ImageID         *string
	ApplicableGroup ApplicableGroup
	DailyStartTimes []int32
	DailyEndTimes   []int32

	NumUpvote   int
	NumDownvote int
	UserVote    votes.Type
	UserSaved   bool
}

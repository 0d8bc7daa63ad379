package models

// Fixed ids of the two protected default milestones.
const (
	AnniversaryMeetID     = "anniversary_meet"
	AnniversaryTogetherID = "anniversary_together"
)

// AnniversaryIcon tags a milestone with one of a fixed small set of icons.
type AnniversaryIcon string

const (
	IconMeet     AnniversaryIcon = "meet"
	IconHeart    AnniversaryIcon = "heart"
	IconCalendar AnniversaryIcon = "calendar"
	IconStar     AnniversaryIcon = "star"
	IconGift     AnniversaryIcon = "gift"
)

// NormalizeIcon maps an arbitrary tag onto the fixed icon set. Unknown or
// empty tags become IconCalendar.
func NormalizeIcon(s string) AnniversaryIcon {
	switch AnniversaryIcon(s) {
	case IconMeet, IconHeart, IconCalendar, IconStar, IconGift:
		return AnniversaryIcon(s)
	default:
		return IconCalendar
	}
}

// AnniversaryItem is one dated milestone. Date is an ISO calendar date
// ("2006-01-02") or the empty string when unset. Lower Priority values take
// precedence when selecting the primary milestone. Items with IsDefault set
// can never be removed.
type AnniversaryItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Date      string          `json:"date"`
	Icon      AnniversaryIcon `json:"icon"`
	IsDefault bool            `json:"isDefault"`
	Priority  int             `json:"priority"`
}

// AnniversaryFields carries the user-supplied fields for a new milestone.
type AnniversaryFields struct {
	Name string
	Date string
	Icon string
}

// AnniversaryPatch merges non-nil fields into an existing milestone.
type AnniversaryPatch struct {
	Name     *string
	Date     *string
	Icon     *AnniversaryIcon
	Priority *int
}

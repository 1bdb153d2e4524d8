package domain

import "time"

// ViewCooldown is the minimum time between two rewarded views of the same
// ad by the same user.
const ViewCooldown = 600 * time.Second

// ViewAllowed reports whether a view at now is reward-eligible given the
// previous rewarded view of the same (user, ad) pair. seen is false when
// there is no previous view.
func ViewAllowed(lastViewedAt time.Time, seen bool, now time.Time) bool {
	if !seen {
		return true
	}
	return now.Sub(lastViewedAt) >= ViewCooldown
}

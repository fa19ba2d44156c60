package nav

import (
	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
	"github.com/kwakyosong/platform-ui/internal/domain/view"
)

// Link is one header navigation entry.
type Link struct {
	Target view.View
	Href   string
	Label  string
	Active bool
}

// Links produces the ordered header navigation for the given session and
// current view. Admin views get the admin nav set; everything else gets the
// public set. A link is only emitted when its target passes authorization for
// this session, so the header can never advertise a view the user would be
// bounced from.
func Links(sess *domainauth.Session, current view.View) []Link {
	var targets []view.View
	switch current {
	case view.AdminDashboard, view.AdminContents, view.AdminUsers:
		targets = []view.View{view.AdminDashboard, view.AdminContents, view.AdminUsers}
	default:
		targets = []view.View{view.Home, view.Community, view.CareerMap}
	}

	links := make([]Link, 0, len(targets))
	for _, t := range targets {
		if view.Authorize(sess, t) != view.Allow {
			continue
		}
		links = append(links, Link{
			Target: t,
			Href:   view.Path(t),
			Label:  linkLabel(t),
			Active: t == current,
		})
	}
	return links
}

func linkLabel(v view.View) string {
	switch v {
	case view.Home:
		return "Home"
	case view.Community:
		return "Community"
	case view.CareerMap:
		return "Career Map"
	case view.AdminDashboard:
		return "Dashboard"
	case view.AdminContents:
		return "Contents"
	case view.AdminUsers:
		return "Users"
	case view.Detail:
		return "Detail"
	case view.Login:
		return "Sign In"
	default:
		return string(v)
	}
}

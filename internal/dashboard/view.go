package dashboard

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/thesrcielos/CodingTracker/internal/platform"
)

var quotes = []string{
	"Code is like humor. When you have to explain it, it's bad.",
	"First, solve the problem. Then, write the code.",
	"Experience is the name everyone gives to their mistakes.",
	"In order to be irreplaceable, one must always be different.",
	"Simplicity is the soul of efficiency.",
}

func RandomQuote() string {
	return quotes[rand.Intn(len(quotes))]
}

// Filter keeps platforms whose name contains term, ignoring case.
func Filter(platforms []platform.Platform, term string) []platform.Platform {
	term = strings.ToLower(term)
	out := make([]platform.Platform, 0, len(platforms))
	for _, p := range platforms {
		if strings.Contains(strings.ToLower(string(p)), term) {
			out = append(out, p)
		}
	}
	return out
}

type View struct {
	Profile Profile
	Cards   map[platform.Platform]Card
	Daily   DailyStatus
	Search  string
	Quote   string
}

func Render(w io.Writer, v View) error {
	bell := "pending"
	if v.Daily.AllDone() {
		bell = "all done"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s <%s>   daily: %s\n\n", strings.ToUpper(v.Profile.Username), v.Profile.Email, bell)
	fmt.Fprintf(&b, "Hello, %s\n", strings.ToUpper(v.Profile.Username))
	if v.Quote != "" {
		fmt.Fprintf(&b, "  \"%s\"\n", v.Quote)
	}
	b.WriteString("\n")

	shown := Filter(platform.Platforms(), v.Search)
	if len(shown) == 0 {
		fmt.Fprintf(&b, "no platform matches %q\n", v.Search)
	}
	for _, p := range shown {
		card, ok := v.Cards[p]
		if !ok {
			card = defaultCard(p)
		}
		mark := " "
		if v.Daily[p] {
			mark = "x"
		}
		fmt.Fprintf(&b, "[%s] %-11s Username: %-16s Total Solved: %d\n", mark, p.Title(), card.Username, card.TotalSolved)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

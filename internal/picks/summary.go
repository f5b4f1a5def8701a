package picks

import (
	"fmt"
	"math"
	"strings"

	"github.com/yourusername/siggys-picks/internal/models"
	"github.com/yourusername/siggys-picks/internal/odds"
)

// Summary renders the one-line blurb shown next to a game, e.g.
// "I'll take Boston Bruins ML at -150 / 1.67 (10%). • +1.5 on the Ottawa Senators (40% conf)"
func Summary(result models.PickResult, match models.MatchInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "I'll take %s ML", match.TeamName(result.MoneylinePick))
	if ml, ok := match.Moneyline(result.MoneylinePick); ok {
		fmt.Fprintf(&b, " at %s / %s", odds.FormatMoneyline(ml), odds.MoneylineToDecimal(ml).StringFixed(2))
	}
	fmt.Fprintf(&b, " (%d%%).", result.MoneylineConfidence)

	if pl := result.UnderdogPuckline; pl != nil {
		fmt.Fprintf(&b, " • %s on the %s (%d%% conf)",
			odds.FormatLine(math.Abs(pl.Line)), match.TeamName(pl.Side), pl.Confidence)
	}
	return b.String()
}

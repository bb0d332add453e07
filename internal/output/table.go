package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/olekukonko/tablewriter"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/database"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/recommend"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/spend"
)

// currency is the symbol prefixed to money values; settable from config
var currency = "$"

// SetCurrency overrides the money symbol used by table output
func SetCurrency(symbol string) {
	currency = symbol
}

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []database.MealRecord:
		return mealsTable(w, v)
	case []database.GroceryTrip:
		return groceriesTable(w, v)
	case []database.DisabledItem:
		return disabledTable(w, v)
	case []recommend.Candidate:
		return candidatesTable(w, v, recommend.NoChoice)
	case []recommend.TierStatus:
		return tiersTable(w, v)
	case []recommend.CuisineRecommendation:
		return cuisinesTable(w, v)
	case *spend.Summary:
		return summaryDetail(w, v)
	case *database.BudgetPreferences:
		return prefsDetail(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func money(v float64) string {
	return fmt.Sprintf("%s%.2f", currency, v)
}

func mealsTable(w io.Writer, meals []database.MealRecord) error {
	if len(meals) == 0 {
		fmt.Fprintln(w, "No meals logged yet.")
		return nil
	}

	t := tablewriter.NewWriter(w)
	t.Header([]string{"DATE", "RESTAURANT", "DISH", "CUISINE", "COST", "TIER", "RATING"})

	for _, m := range meals {
		restaurant := "-"
		if m.Restaurant != nil && *m.Restaurant != "" {
			restaurant = *m.Restaurant
		}
		rating := "-"
		if m.Rating != nil {
			rating = strings.Repeat("★", *m.Rating)
		}
		t.Append([]string{
			m.Date,
			truncate(restaurant, 22),
			truncate(m.Dish, 26),
			m.Cuisine,
			money(m.Cost),
			string(recommend.ClassifyTier(m.Cost)),
			rating,
		})
	}

	return t.Render()
}

func groceriesTable(w io.Writer, trips []database.GroceryTrip) error {
	if len(trips) == 0 {
		fmt.Fprintln(w, "No grocery trips logged yet.")
		return nil
	}

	t := tablewriter.NewWriter(w)
	t.Header([]string{"DATE", "STORE", "AMOUNT"})

	for _, g := range trips {
		t.Append([]string{g.Date, truncate(g.Store, 26), money(g.Amount)})
	}

	return t.Render()
}

func disabledTable(w io.Writer, items []database.DisabledItem) error {
	active := make([]database.DisabledItem, 0, len(items))
	for _, d := range items {
		if d.Disabled {
			active = append(active, d)
		}
	}

	if len(active) == 0 {
		fmt.Fprintln(w, "No items disabled.")
		return nil
	}

	t := tablewriter.NewWriter(w)
	t.Header([]string{"RESTAURANT", "DISH"})

	for _, d := range active {
		restaurant := "-"
		if d.Restaurant != nil && *d.Restaurant != "" {
			restaurant = *d.Restaurant
		}
		t.Append([]string{truncate(restaurant, 26), truncate(d.Dish, 30)})
	}

	return t.Render()
}

// Choices renders the top-N candidate pool with the sampled pick marked
func Choices(w io.Writer, candidates []recommend.Candidate, chosen int) error {
	return candidatesTable(w, candidates, chosen)
}

func candidatesTable(w io.Writer, candidates []recommend.Candidate, chosen int) error {
	if len(candidates) == 0 {
		fmt.Fprintln(w, "No eligible meals right now. Try widening the budget or the repeat window.")
		return nil
	}

	t := tablewriter.NewWriter(w)
	t.Header([]string{"", "RESTAURANT", "DISH", "CUISINE", "COST", "TIER", "SCORE"})

	for i, c := range candidates {
		mark := ""
		if i == chosen {
			mark = "»"
		}
		restaurant := "-"
		if c.Record.Restaurant != nil && *c.Record.Restaurant != "" {
			restaurant = *c.Record.Restaurant
		}
		t.Append([]string{
			mark,
			truncate(restaurant, 22),
			truncate(c.Record.Dish, 26),
			c.Record.Cuisine,
			money(c.Record.Cost),
			string(recommend.ClassifyTier(c.Record.Cost)),
			fmt.Sprintf("%.1f", c.Score),
		})
	}

	return t.Render()
}

// Reveal prints the chosen meal with its full score breakdown
func Reveal(w io.Writer, c *recommend.Candidate) error {
	restaurant := "home"
	if c.Record.Restaurant != nil && *c.Record.Restaurant != "" {
		restaurant = *c.Record.Restaurant
	}

	fmt.Fprintf(w, "🥚 Your mystery egg cracked open: %s (%s)\n\n", c.Record.Dish, restaurant)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Cuisine:\t%s\n", c.Record.Cuisine)
	fmt.Fprintf(tw, "Cost:\t%s (%s)\n", money(c.Record.Cost), recommend.ClassifyTier(c.Record.Cost))
	fmt.Fprintf(tw, "Last eaten:\t%s\n", c.Record.Date)
	fmt.Fprintf(tw, "Score:\t%.1f\n", c.Score)
	fmt.Fprintf(tw, "  rating\t%+.1f\n", c.Breakdown.RatingWeight)
	fmt.Fprintf(tw, "  recency\t%+.1f\n", c.Breakdown.RecencyPenalty)
	fmt.Fprintf(tw, "  budget\t%+.1f\n", c.Breakdown.BudgetFit)
	fmt.Fprintf(tw, "  weather\t%+.1f\n", c.Breakdown.WeatherBonus)
	fmt.Fprintf(tw, "  jitter\t%+.1f\n", c.Breakdown.Jitter)
	return tw.Flush()
}

func tiersTable(w io.Writer, statuses []recommend.TierStatus) error {
	t := tablewriter.NewWriter(w)
	t.Header([]string{"TIER", "ELIGIBLE", "HINT"})

	for _, s := range statuses {
		eligible := "no"
		if s.Eligible {
			eligible = "yes"
		}
		t.Append([]string{string(s.Tier), eligible, s.Hint})
	}

	return t.Render()
}

func cuisinesTable(w io.Writer, recs []recommend.CuisineRecommendation) error {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No cuisine suggestions right now.")
		return nil
	}

	t := tablewriter.NewWriter(w)
	t.Header([]string{"CUISINE", "SCORE", "AVG RATING", "LAST COST", "LAST EATEN", "BOOST"})

	for _, r := range recs {
		boost := ""
		if r.Boost > 0 {
			boost = fmt.Sprintf("+%d", r.Boost)
		}
		t.Append([]string{
			r.Cuisine,
			fmt.Sprintf("%.1f", r.Score),
			fmt.Sprintf("%.1f", r.AvgRating),
			money(r.LastCost),
			formatDaysAgo(r.LastDays),
			boost,
		})
	}

	return t.Render()
}

func summaryDetail(w io.Writer, s *spend.Summary) error {
	fmt.Fprintf(w, "Spending for %s\n", s.Month)
	fmt.Fprintln(w, strings.Repeat("-", 30))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Meals:\t%s\t(%d logged)\n", money(s.MealTotal), s.MealCount)
	fmt.Fprintf(tw, "Groceries:\t%s\t(%d trips)\n", money(s.GroceryTotal), s.GroceryCount)
	fmt.Fprintf(tw, "Total:\t%s\t\n", money(s.Total))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(s.ByCuisine) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "By cuisine:")
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, cs := range s.ByCuisine {
			fmt.Fprintf(tw, "  %s\t%s\t(%d)\n", cs.Cuisine, money(cs.Total), cs.Count)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if len(s.ByTier) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "By tier:")
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, tier := range []string{"Bronze", "Silver", "Gold", "Diamond"} {
			if total, ok := s.ByTier[tier]; ok {
				fmt.Fprintf(tw, "  %s\t%s\n", tier, money(total))
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	return nil
}

func prefsDetail(w io.Writer, p *database.BudgetPreferences) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Budget:\t%s - %s per meal\n", money(p.Min), money(p.Max))
	if p.ForbidRepeatDays == 0 {
		fmt.Fprintf(tw, "No-repeat window:\toff\n")
	} else {
		fmt.Fprintf(tw, "No-repeat window:\t%d day(s)\n", p.ForbidRepeatDays)
	}
	return tw.Flush()
}

func formatDaysAgo(days int) string {
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

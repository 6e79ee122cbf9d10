package dataset

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/covlens/covlens/internal/model"
)

// Share of reliable articles in the synthetic corpus. Mirrors the
// label imbalance of the real dataset this tool was built around.
const reliableShare = 0.95

var reliableTemplates = []struct {
	title   string
	content string
}{
	{
		"Health officials report trial progress",
		"Health officials at the %s briefing reported that the ongoing clinical trial has enrolled more participants than planned. Peer-reviewed data from the study will be published in a medical journal once the review completes, researchers said.",
	},
	{
		"New study tracks vaccination outcomes",
		"A new study published this week tracks vaccination outcomes across %s regions. Scientists involved said the evidence so far matches earlier research, and doctors have been advised to continue current guidance while the data is reviewed.",
	},
	{
		"Experts discuss immunization schedule",
		"Experts speaking at a %s panel discussed adjustments to the immunization schedule. The CDC said the proposal rests on data from a randomized controlled trial and that health officials will publish the full evidence for public review.",
	},
	{
		"Hospitals share treatment research",
		"Hospitals in the %s network shared early research on treatment protocols. The findings have not yet been peer-reviewed, but doctors stressed that study conditions followed established clinical trial practice throughout.",
	},
	{
		"WHO updates testing guidance",
		"The World Health Organization updated its testing guidance for the %s period, citing published evidence from several member states. Scientists described the revision as routine and consistent with prior research.",
	},
}

var misinfoTemplates = []struct {
	title   string
	content string
}{
	{
		"What they don't want you to know",
		"WAKE UP!!! The %s announcement proves this whole plandemic is a cover up. Big pharma and bill gates are pushing an untested, dangerous shot while the mainstream media looks away. Do your own research before it is too late!!!",
	},
	{
		"The real agenda behind the rollout",
		"They are using the %s rollout to push microchip tracking on the population. This experimental injection is part of a depopulation agenda and the side effects are being hidden. SHARE THIS NOW before they delete it!!!",
	},
	{
		"5G and the virus: the hidden link",
		"Nobody in the %s press will say it, but the 5g towers switched on right before the outbreak. It is not a virus, it is a bioweapon, and natural immunity is being suppressed to keep the hoax alive. WAKE UP SHEEPLE!!!",
	},
}

var regions = []string{
	"regional", "national", "state", "provincial", "municipal",
	"European", "Midwest", "coastal", "metropolitan", "rural",
}

// Generate produces a deterministic synthetic corpus: same seed and
// size, same records, byte for byte. Used whenever no CSV is
// configured so the rest of the application always has data to show.
func Generate(seed int64, size int) []model.Article {
	if size <= 0 {
		size = 100
	}

	rng := rand.New(rand.NewSource(seed))
	reliableCount := int(float64(size) * reliableShare)

	start := time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC)
	spanDays := 320

	articles := make([]model.Article, 0, size)
	for i := 0; i < size; i++ {
		region := regions[rng.Intn(len(regions))]
		published := start.AddDate(0, 0, rng.Intn(spanDays))

		if i < reliableCount {
			tpl := reliableTemplates[rng.Intn(len(reliableTemplates))]
			articles = append(articles, model.Article{
				Title:       fmt.Sprintf("%s (%d)", tpl.title, i+1),
				Content:     fmt.Sprintf(tpl.content, region),
				PublishDate: published,
				Label:       model.LabelReal,
			})
		} else {
			tpl := misinfoTemplates[rng.Intn(len(misinfoTemplates))]
			articles = append(articles, model.Article{
				Title:       fmt.Sprintf("%s (%d)", tpl.title, i+1),
				Content:     fmt.Sprintf(tpl.content, region),
				PublishDate: published,
				Label:       model.LabelFake,
			})
		}
	}

	return articles
}

package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"sanchar/internal/models/domain_models"
	"sanchar/internal/repositories"
	"sanchar/pkg/utils"
)

// Closed set of edit actions the classifier can return.
const (
	actionReplaceVisited      = "replace_visited"
	actionRegenerateAll       = "regenerate_all"
	actionExcludeCategory     = "exclude_category"
	actionFilterCategory      = "filter_category"
	actionExpandRadius        = "expand_search_radius"
	actionGeneralConversation = "general_conversation"
	actionNoAction            = "no_action"
)

const (
	relaxedPaceFactor = 1.25
	relaxedPaceCapHr  = 3.0
	fasterPaceFactor  = 0.8
	fasterPaceFloorHr = 0.5
)

// knownCategories drive the keyword fallback classifier.
var knownCategories = []string{
	"cafe", "park", "restaurant", "mall", "temple", "lake", "museum", "bar", "food",
}

// substitutionTargets are common named places users ask to swap in by hand;
// checked by the free-text fallback when no structured action applies.
var substitutionTargets = []string{
	"cubbon park", "lalbagh", "ulsoor lake", "bugle rock park", "sankey tank",
}

type editCommand struct {
	action string
	arg    string
}

// ChatServiceInterface is the conversational editor: it applies a classified
// edit action to the stored plan + search context. Every path that cannot
// find a valid target returns the previous plan unchanged with an explanatory
// narration; nothing here returns an error for expected variability.
type ChatServiceInterface interface {
	StartSession(startLat, startLon float64) *domain_models.SessionRecord
	AttachPlan(sessionID string, intent domain_models.Intent, plan *domain_models.Plan, search domain_models.SearchContext) error
	HandleMessage(ctx context.Context, sessionID, message string) (*domain_models.Plan, error)
}

type ChatService struct {
	sessions   repositories.SessionStore
	planner    PlannerServiceInterface
	filter     FilterServiceInterface
	classifier utils.CommandClassifierInterface
}

func NewChatService(
	sessions repositories.SessionStore,
	planner PlannerServiceInterface,
	filter FilterServiceInterface,
	classifier utils.CommandClassifierInterface,
) ChatServiceInterface {
	return &ChatService{
		sessions:   sessions,
		planner:    planner,
		filter:     filter,
		classifier: classifier,
	}
}

func (c *ChatService) StartSession(startLat, startLon float64) *domain_models.SessionRecord {
	return c.sessions.Create(startLat, startLon)
}

func (c *ChatService) AttachPlan(sessionID string, intent domain_models.Intent, plan *domain_models.Plan, search domain_models.SearchContext) error {
	record, ok := c.sessions.Get(sessionID)
	if !ok {
		return utils.ErrSessionNotFound
	}

	record.Intent = intent
	record.Plan = plan
	record.Search = search
	c.sessions.Save(record)

	return nil
}

func (c *ChatService) HandleMessage(ctx context.Context, sessionID, message string) (*domain_models.Plan, error) {
	record, ok := c.sessions.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	if record.Plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	cmd := c.classify(ctx, message, record.Plan)

	switch cmd.action {
	case actionReplaceVisited:
		c.replaceVisited(record, cmd.arg)
	case actionRegenerateAll:
		c.regenerateAll(record)
	case actionExcludeCategory:
		c.excludeCategory(record, cmd.arg)
	case actionFilterCategory:
		c.filterCategory(record, cmd.arg)
	case actionExpandRadius:
		c.expandRadius(record)
	case actionGeneralConversation:
		record.Plan.Narration = "Hello! I'm your travel assistant. I can help you replace places " +
			"you've visited or find more options. What would you like to do?"
	default:
		c.freeTextEdit(record, message)
	}

	// The whole record is rewritten each turn, last writer wins.
	c.sessions.Save(record)

	return record.Plan, nil
}

// classify asks the collaborator for a command token and falls back to the
// keyword heuristic on failure or an unrecognized token.
func (c *ChatService) classify(ctx context.Context, message string, plan *domain_models.Plan) editCommand {
	if c.classifier != nil {
		names := make([]string, 0, len(plan.Entries))
		categories := make([]string, 0, len(plan.Entries))
		seenCat := map[string]bool{}
		for _, e := range plan.Entries {
			names = append(names, e.PlaceName)
			cat := utils.NormalizeCategory(e.Category)
			if !seenCat[cat] {
				seenCat[cat] = true
				categories = append(categories, cat)
			}
		}

		token, err := c.classifier.ClassifyCommand(ctx, message, names, categories)
		if err != nil {
			log.Printf("Command classifier unavailable, using keyword fallback: %v", err)
		} else if cmd, ok := parseCommandToken(token); ok {
			return cmd
		}
	}

	return fallbackClassify(message)
}

// parseCommandToken maps the classifier's grammar onto edit actions.
func parseCommandToken(token string) (editCommand, bool) {
	token = strings.ToLower(strings.TrimSpace(token))

	switch {
	case strings.HasPrefix(token, "i've visited"), strings.HasPrefix(token, "ive visited"):
		arg := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(token, "i've visited"), "ive visited"))
		return editCommand{action: actionReplaceVisited, arg: arg}, true
	case strings.Contains(token, "regenerate_all"):
		return editCommand{action: actionRegenerateAll}, true
	case strings.HasPrefix(token, "exclude_category:"):
		return editCommand{action: actionExcludeCategory, arg: strings.TrimSpace(strings.TrimPrefix(token, "exclude_category:"))}, true
	case strings.HasPrefix(token, "category:"):
		return editCommand{action: actionFilterCategory, arg: strings.TrimSpace(strings.TrimPrefix(token, "category:"))}, true
	case strings.Contains(token, "show me more options"):
		return editCommand{action: actionExpandRadius}, true
	case strings.Contains(token, "general_conversation"):
		return editCommand{action: actionGeneralConversation}, true
	case token == actionNoAction:
		return editCommand{action: actionNoAction}, true
	}

	return editCommand{}, false
}

// fallbackClassify is the keyword heuristic used when the collaborator is
// unavailable or returns an unrecognized token.
func fallbackClassify(message string) editCommand {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, "visited", "been to", "gone to"):
		return editCommand{action: actionReplaceVisited, arg: lower}
	case containsAny(lower, "other options", "something else", "different places", "new plan", "regenerate", "refresh"):
		return editCommand{action: actionRegenerateAll}
	case containsAny(lower, "more options", "more places", "expand", "wider"):
		return editCommand{action: actionExpandRadius}
	case containsAny(lower, "don't want", "dont want", "no more", "not interested", "exclude", "avoid"):
		if cat := firstKnownCategory(lower); cat != "" {
			return editCommand{action: actionExcludeCategory, arg: cat}
		}
	case isGreeting(lower):
		return editCommand{action: actionGeneralConversation}
	}

	if cat := firstKnownCategory(lower); cat != "" {
		return editCommand{action: actionFilterCategory, arg: cat}
	}

	return editCommand{action: actionNoAction}
}

func (c *ChatService) replaceVisited(record *domain_models.SessionRecord, mention string) {
	plan := record.Plan

	idx := findMentionedPlace(mention, plan.Entries)
	if idx < 0 {
		plan.Narration = "I couldn't identify which place you've visited. Could you be more specific?"
		return
	}
	visited := plan.Entries[idx]

	replacement, ok := c.bestUnusedCandidate(record, nil)
	if !ok {
		plan.Narration = fmt.Sprintf(
			"I understand you've visited %s, but I couldn't find similar alternatives nearby.",
			visited.PlaceName,
		)
		return
	}

	// Distance shown is from the original reference location, not from the
	// replaced stop.
	dist := utils.Haversine(record.Search.OriginLat, record.Search.OriginLon,
		replacement.Place.Latitude, replacement.Place.Longitude)

	plan.Entries[idx] = domain_models.PlanEntry{
		PlaceID:     replacement.Place.ID,
		PlaceName:   replacement.Place.Name,
		Category:    replacement.Place.Category,
		DistanceKm:  math.Round(dist*100) / 100,
		VisitTimeHr: utils.EstimateVisitTime(replacement.Place.Category),
		BudgetRange: fmt.Sprintf("₹%.0f-%.0f", replacement.Place.BudgetMin, replacement.Place.BudgetMax),
		FamousFor:   replacement.Place.FamousFor,
		Area:        replacement.Place.Area,
		Score:       replacement.FinalScore,
		MapsURL:     MapsSearchURL(replacement.Place.Name, replacement.Place.Area),
	}
	plan.RecalculateSummary()
	plan.Narration = fmt.Sprintf("I've replaced %s with %s.", visited.PlaceName, replacement.Place.Name)
}

// bestUnusedCandidate scores the stored search pool minus current plan
// entries and the denylist, returning the top candidate. Replacement honors
// proximity and the stored radius only; the original budget band is not
// re-verified.
func (c *ChatService) bestUnusedCandidate(record *domain_models.SessionRecord, extraExclude map[string]bool) (domain_models.ScoredCandidate, bool) {
	used := make(map[string]bool, len(record.Plan.Entries))
	for _, id := range record.Plan.PlaceIDs() {
		used[id] = true
	}
	for id := range extraExclude {
		used[id] = true
	}

	pool := make([]domain_models.Place, 0)
	for _, place := range c.planner.NearbyPool(&record.Search) {
		if used[place.ID] || record.Search.IsExcluded(utils.NormalizeCategory(place.Category)) {
			continue
		}
		pool = append(pool, place)
	}
	if len(pool) == 0 {
		return domain_models.ScoredCandidate{}, false
	}

	candidates := c.filter.BuildCandidates(pool, record.Intent, record.Search.OriginLat, record.Search.OriginLon)
	return candidates[0], true
}

func (c *ChatService) regenerateAll(record *domain_models.SessionRecord) {
	exclude := make(map[string]bool, len(record.Plan.Entries))
	for _, id := range record.Plan.PlaceIDs() {
		exclude[id] = true
	}

	opts := RebuildOptions{
		ExcludeIDs: exclude,
		Diversify:  true,
		Narration:  "I've generated a fresh set of recommendations matching your preferences!",
	}

	plan, pool := c.planner.Rebuild(record.Intent, &record.Search, opts)
	if pool == 0 && record.Search.RadiusKm < maxRadiusKm {
		record.Search.RadiusKm = math.Min(record.Search.RadiusKm*radiusExpansionFactor, maxRadiusKm)
		plan, pool = c.planner.Rebuild(record.Intent, &record.Search, opts)
	}
	if pool == 0 || len(plan.Entries) == 0 {
		record.Plan.Narration = "You've already seen every place I can find here, even at the widest " +
			"search radius. I'm keeping your current plan."
		return
	}

	record.Plan = plan
}

func (c *ChatService) excludeCategory(record *domain_models.SessionRecord, category string) {
	if strings.TrimSpace(category) == "" {
		record.Plan.Narration = "Which kind of place should I leave out?"
		return
	}

	// Exclusions accumulate across turns.
	record.Search.AddExclusion(category)

	plan, pool := c.planner.Rebuild(record.Intent, &record.Search, RebuildOptions{
		Diversify: true,
		Narration: fmt.Sprintf("Got it! Here are places excluding %s.", category),
	})
	if pool == 0 || len(plan.Entries) == 0 {
		// Nothing left without that category: drop the exclusion again so the
		// session stays usable.
		record.Search.RemoveExclusion(category)
		record.Plan.Narration = fmt.Sprintf(
			"No other places found after excluding %s. Try expanding your search.", category)
		return
	}

	record.Plan = plan
}

func (c *ChatService) filterCategory(record *domain_models.SessionRecord, category string) {
	if strings.TrimSpace(category) == "" {
		record.Plan.Narration = "Which kind of place are you looking for?"
		return
	}

	plan, pool := c.planner.Rebuild(record.Intent, &record.Search, RebuildOptions{
		CategoryFilter: category,
	})
	if pool == 0 || len(plan.Entries) == 0 {
		record.Plan.Narration = fmt.Sprintf(
			"No %s places found in this area. Try a different category or expand your search.", category)
		return
	}

	plan.Narration = fmt.Sprintf("Here are %d %s places in your area!", len(plan.Entries), category)
	record.Plan = plan
}

func (c *ChatService) expandRadius(record *domain_models.SessionRecord) {
	if record.Search.RadiusKm >= maxRadiusKm {
		record.Plan.Narration = "The search already covers the widest area I support. " +
			"I'm keeping your current plan."
		return
	}

	record.Search.RadiusKm = math.Min(record.Search.RadiusKm*radiusExpansionFactor, maxRadiusKm)

	plan, pool := c.planner.Rebuild(record.Intent, &record.Search, RebuildOptions{
		Diversify: true,
		Narration: fmt.Sprintf("I've widened the search to %.1f km and refreshed your plan.", record.Search.RadiusKm),
	})
	if pool == 0 || len(plan.Entries) == 0 {
		record.Plan.Narration = "Even with a wider search area I couldn't find anything new. " +
			"I'm keeping your current plan."
		return
	}

	record.Plan = plan
}

// freeTextEdit handles the two heuristic edits that need no structured
// action: pacing changes and substitution of a well-known named place.
func (c *ChatService) freeTextEdit(record *domain_models.SessionRecord, message string) {
	lower := strings.ToLower(message)
	plan := record.Plan

	switch {
	case containsAny(lower, "relaxed", "relax", "slower", "slow down", "leisurely"):
		for i := range plan.Entries {
			plan.Entries[i].VisitTimeHr = math.Min(plan.Entries[i].VisitTimeHr*relaxedPaceFactor, relaxedPaceCapHr)
		}
		plan.RecalculateSummary()
		plan.Narration = "I've slowed the pace down: you'll have more time at each stop."
		return
	case containsAny(lower, "faster", "quicker", "rush", "less time", "speed up"):
		for i := range plan.Entries {
			plan.Entries[i].VisitTimeHr = math.Max(plan.Entries[i].VisitTimeHr*fasterPaceFactor, fasterPaceFloorHr)
		}
		plan.RecalculateSummary()
		plan.Narration = "I've tightened the schedule: shorter stops, same places."
		return
	}

	for _, target := range substitutionTargets {
		if strings.Contains(lower, target) {
			if idx := findMentionedPlace(target, plan.Entries); idx >= 0 {
				c.replaceVisited(record, target)
				return
			}
		}
	}

	plan.Narration = "I'm here to help! You can ask me to replace places you've visited or find more options."
}

// findMentionedPlace locates a plan entry by full-name or leading-word match.
func findMentionedPlace(message string, entries []domain_models.PlanEntry) int {
	lower := strings.ToLower(message)

	for i, e := range entries {
		name := strings.ToLower(e.PlaceName)
		if strings.Contains(lower, name) {
			return i
		}
		firstWord := strings.SplitN(name, " ", 2)[0]
		if len(firstWord) > 3 && strings.Contains(lower, firstWord) {
			return i
		}
	}
	return -1
}

func firstKnownCategory(lower string) string {
	for _, cat := range knownCategories {
		if strings.Contains(lower, cat) {
			return cat
		}
	}
	return ""
}

func isGreeting(lower string) bool {
	switch strings.Trim(lower, " !.?") {
	case "hi", "hello", "hey", "thanks", "thank you", "who are you", "how are you":
		return true
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

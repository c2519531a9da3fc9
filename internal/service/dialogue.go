package service

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"countrybot/internal/domain"

	"go.uber.org/zap"
)

// Button payload prefixes
const (
	selPrefix    = "sel__"
	regionPrefix = "region__"
)

// Limits on button menus
const (
	maxDisambiguation = 8
	maxRegionList     = 12
)

// Regions offered by the pick-country menu
var pickRegions = []string{"Africa", "Americas", "Asia", "Europe", "Oceania", "Polar"}

// menuAction identifies one fixed menu action reachable by keyword
type menuAction int

const (
	actionInfo menuAction = iota
	actionPick
	actionSetHome
	actionCompare
	actionHome
	actionHelp
)

// menuKeywords maps free-text phrasing to menu actions. Evaluated top to
// bottom against the lowercased message, first substring match wins.
var menuKeywords = []struct {
	substr string
	action menuAction
}{
	{"инфо", actionInfo},
	{"выбрать страну", actionPick},
	{"сохранить домашнюю страну", actionSetHome},
	{"сравнить", actionCompare},
	{"мои настройки", actionHome},
	{"команд", actionHelp},
	{"commands", actionHelp},
	{"помощь", actionHelp},
}

// DialogueRouter owns per-user pending-intent state and turns inbound
// events into reply plans. One pending intent is active per user at most;
// any plain text message consumes it.
type DialogueRouter struct {
	countries *CountryService
	compare   *ComparisonEngine
	prefs     *PreferenceService
	logger    *zap.Logger

	states   map[int64]domain.PendingIntent
	stateMux sync.RWMutex

	// Per-user locks so one user's events are handled in order while
	// other users proceed concurrently
	userLocks map[int64]*sync.Mutex
	lockMux   sync.Mutex
}

// NewDialogueRouter creates a new dialogue router
func NewDialogueRouter(
	countries *CountryService,
	compare *ComparisonEngine,
	prefs *PreferenceService,
	logger *zap.Logger,
) *DialogueRouter {
	return &DialogueRouter{
		countries: countries,
		compare:   compare,
		prefs:     prefs,
		logger:    logger,
		states:    make(map[int64]domain.PendingIntent),
		userLocks: make(map[int64]*sync.Mutex),
	}
}

// Handle processes one inbound event and returns the reply to render
func (r *DialogueRouter) Handle(ev domain.Event) domain.ReplyPlan {
	lock := r.userLock(ev.UserID)
	lock.Lock()
	defer lock.Unlock()

	switch ev.Kind {
	case domain.EventCommand:
		return r.handleCommand(ev)
	case domain.EventText:
		return r.handleText(ev)
	case domain.EventButton:
		return r.handleButton(ev)
	default:
		return domain.ReplyPlan{Text: msgUnknownAction, ShowMenu: true}
	}
}

// GetState returns the user's current pending intent
func (r *DialogueRouter) GetState(userID int64) domain.PendingIntent {
	r.stateMux.RLock()
	defer r.stateMux.RUnlock()

	state, exists := r.states[userID]
	if !exists {
		return domain.IntentNone
	}
	return state
}

func (r *DialogueRouter) setState(userID int64, state domain.PendingIntent) {
	r.stateMux.Lock()
	defer r.stateMux.Unlock()
	r.states[userID] = state
}

func (r *DialogueRouter) clearState(userID int64) {
	r.setState(userID, domain.IntentNone)
}

func (r *DialogueRouter) userLock(userID int64) *sync.Mutex {
	r.lockMux.Lock()
	defer r.lockMux.Unlock()

	lock, exists := r.userLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		r.userLocks[userID] = lock
	}
	return lock
}

func (r *DialogueRouter) handleCommand(ev domain.Event) domain.ReplyPlan {
	args := strings.TrimSpace(ev.Args)

	switch ev.Command {
	case "start":
		name := ev.DisplayName
		if name == "" {
			name = "пользователь"
		}
		text := fmt.Sprintf("Привет, %s! Я бот-справочник по странам.\n\n", name) +
			"Что я умею:\n" +
			"/info <страна> — информация о стране\n" +
			"/pickcountry — выбрать страну вручную\n" +
			"/sethome <страна> — сохранить домашнюю страну\n" +
			"/home — показать домашнюю страну\n" +
			"/compare <страна1;страна2> — сравнить две страны\n" +
			"/help — список команд"
		return domain.ReplyPlan{Text: text, ShowMenu: true}

	case "help":
		return domain.ReplyPlan{Text: helpText, ShowMenu: true}

	case "info":
		if args != "" {
			return r.countryDetail(args)
		}
		r.setState(ev.UserID, domain.IntentAwaitingInfo)
		return domain.ReplyPlan{Text: msgAskCountry}

	case "sethome":
		if args != "" {
			return r.saveHome(ev.UserID, args, ev.DisplayName)
		}
		r.setState(ev.UserID, domain.IntentAwaitingSetHome)
		return domain.ReplyPlan{Text: msgAskCountry}

	case "compare":
		if args != "" {
			if first, second, ok := splitTwoCountries(args); ok {
				return r.runComparison(first, second)
			}
			// An unparseable pair arms the intent so the next message
			// can answer the re-prompt
			r.setState(ev.UserID, domain.IntentAwaitingCompare)
			return domain.ReplyPlan{Text: msgPairRequired, ShowMenu: true}
		}
		r.setState(ev.UserID, domain.IntentAwaitingCompare)
		return domain.ReplyPlan{Text: msgAskPair}

	case "home":
		return r.homeReply(ev.UserID)

	case "pickcountry":
		return r.regionMenu()

	default:
		r.logger.Warn("Unknown command", zap.String("command", ev.Command), zap.Int64("user_id", ev.UserID))
		return domain.ReplyPlan{Text: helpText, ShowMenu: true}
	}
}

func (r *DialogueRouter) handleText(ev domain.Event) domain.ReplyPlan {
	text := strings.TrimSpace(ev.Text)

	// A pending intent always wins and is consumed unconditionally,
	// whether or not the answer turns out to be usable.
	state := r.GetState(ev.UserID)
	if state != domain.IntentNone {
		r.clearState(ev.UserID)

		switch state {
		case domain.IntentAwaitingInfo:
			return r.countryDetail(text)
		case domain.IntentAwaitingSetHome:
			return r.saveHome(ev.UserID, text, ev.DisplayName)
		case domain.IntentAwaitingCompare:
			first, second, ok := splitTwoCountries(text)
			if !ok {
				return domain.ReplyPlan{Text: msgPairFormat, ShowMenu: true}
			}
			return r.runComparison(first, second)
		}
	}

	lower := strings.ToLower(text)
	for _, kw := range menuKeywords {
		if !strings.Contains(lower, kw.substr) {
			continue
		}

		switch kw.action {
		case actionInfo:
			r.setState(ev.UserID, domain.IntentAwaitingInfo)
			return domain.ReplyPlan{Text: msgAskCountry}
		case actionPick:
			return r.regionMenu()
		case actionSetHome:
			r.setState(ev.UserID, domain.IntentAwaitingSetHome)
			return domain.ReplyPlan{Text: msgAskCountry}
		case actionCompare:
			r.setState(ev.UserID, domain.IntentAwaitingCompare)
			return domain.ReplyPlan{Text: msgAskPair}
		case actionHome:
			return r.homeReply(ev.UserID)
		case actionHelp:
			return domain.ReplyPlan{Text: helpText, ShowMenu: true}
		}
	}

	return r.freeQuery(text)
}

func (r *DialogueRouter) handleButton(ev domain.Event) domain.ReplyPlan {
	payload := strings.TrimSpace(ev.Payload)

	switch {
	case strings.HasPrefix(payload, selPrefix):
		return r.countryDetail(strings.TrimPrefix(payload, selPrefix))

	case strings.HasPrefix(payload, regionPrefix):
		return r.regionList(strings.TrimPrefix(payload, regionPrefix))

	default:
		r.logger.Warn("Unhandled button payload",
			zap.String("payload", payload),
			zap.Int64("user_id", ev.UserID),
		)
		return domain.ReplyPlan{Text: msgUnknownAction}
	}
}

// freeQuery treats unmatched text as a country name query
func (r *DialogueRouter) freeQuery(text string) domain.ReplyPlan {
	results, err := r.countries.Search(text)
	if err != nil {
		r.logger.Warn("Country search failed", zap.String("query", text), zap.Error(err))
		return domain.ReplyPlan{Text: msgNotFound, ShowMenu: true}
	}
	if len(results) == 0 {
		return domain.ReplyPlan{Text: msgNotFound, ShowMenu: true}
	}

	if len(results) > 1 {
		buttons := make([]domain.Button, 0, maxDisambiguation)
		for _, c := range results {
			if len(buttons) == maxDisambiguation {
				break
			}
			buttons = append(buttons, domain.Button{Label: c.Name, Payload: selPrefix + c.Name})
		}
		return domain.ReplyPlan{Text: msgMultipleFound, Buttons: buttons}
	}

	return r.detailCard(results[0])
}

// countryDetail resolves a name to its best match and renders the card
func (r *DialogueRouter) countryDetail(name string) domain.ReplyPlan {
	country, err := r.countries.First(name)
	if err != nil {
		r.logger.Warn("Country lookup failed", zap.String("query", name), zap.Error(err))
		return domain.ReplyPlan{Text: msgNotFound, ShowMenu: true}
	}
	if country == nil {
		return domain.ReplyPlan{Text: msgNotFound, ShowMenu: true}
	}
	return r.detailCard(*country)
}

func (r *DialogueRouter) detailCard(c domain.CountryRecord) domain.ReplyPlan {
	return domain.ReplyPlan{
		Text:     formatCountryCard(c),
		Markup:   domain.MarkupRich,
		ShowMenu: true,
	}
}

func (r *DialogueRouter) saveHome(userID int64, name, displayName string) domain.ReplyPlan {
	country, err := r.countries.First(name)
	if err != nil || country == nil {
		if err != nil {
			r.logger.Warn("Home country lookup failed", zap.String("query", name), zap.Error(err))
		}
		return domain.ReplyPlan{Text: msgNotFound, ShowMenu: true}
	}

	if err := r.prefs.SetHome(userID, country.Name, displayName); err != nil {
		r.logger.Error("Failed to save home country",
			zap.Int64("user_id", userID),
			zap.String("country", country.Name),
			zap.Error(err),
		)
		return domain.ReplyPlan{Text: msgSaveFailed, ShowMenu: true}
	}

	r.logger.Info("Home country saved",
		zap.Int64("user_id", userID),
		zap.String("country", country.Name),
	)
	return domain.ReplyPlan{
		Text:     fmt.Sprintf("Домашняя страна сохранена: %s", country.Name),
		ShowMenu: true,
	}
}

func (r *DialogueRouter) homeReply(userID int64) domain.ReplyPlan {
	pref, err := r.prefs.Get(userID)
	if err != nil {
		r.logger.Error("Failed to load preference", zap.Int64("user_id", userID), zap.Error(err))
		return domain.ReplyPlan{Text: msgGenericError, ShowMenu: true}
	}
	if pref == nil {
		return domain.ReplyPlan{Text: msgHomeNotSet, ShowMenu: true}
	}

	head := fmt.Sprintf("Домашняя страна: %s", html.EscapeString(pref.Country))

	country, err := r.countries.First(pref.Country)
	if err != nil || country == nil {
		if err != nil {
			r.logger.Warn("Home country reload failed", zap.String("country", pref.Country), zap.Error(err))
		}
		return domain.ReplyPlan{
			Text:     head + "\n\n" + msgHomeLoadFailed,
			Markup:   domain.MarkupRich,
			ShowMenu: true,
		}
	}

	return domain.ReplyPlan{
		Text:     head + "\n\n" + formatCountryCard(*country),
		Markup:   domain.MarkupRich,
		ShowMenu: true,
	}
}

func (r *DialogueRouter) runComparison(first, second string) domain.ReplyPlan {
	a, errA := r.countries.First(first)
	b, errB := r.countries.First(second)
	if errA != nil || errB != nil {
		return domain.ReplyPlan{Text: msgSearchError, ShowMenu: true}
	}
	if a == nil || b == nil {
		return domain.ReplyPlan{Text: msgOneNotFound, ShowMenu: true}
	}

	report := r.compare.Compare(*a, *b)
	return domain.ReplyPlan{
		Text:     formatComparison(report),
		Markup:   domain.MarkupRich,
		ShowMenu: true,
	}
}

func (r *DialogueRouter) regionMenu() domain.ReplyPlan {
	buttons := make([]domain.Button, 0, len(pickRegions))
	for _, region := range pickRegions {
		buttons = append(buttons, domain.Button{Label: region, Payload: regionPrefix + region})
	}
	return domain.ReplyPlan{Text: msgPickRegion, Buttons: buttons}
}

func (r *DialogueRouter) regionList(region string) domain.ReplyPlan {
	countries, err := r.countries.ByRegion(region)
	if err != nil {
		r.logger.Warn("Region lookup failed", zap.String("region", region), zap.Error(err))
		return domain.ReplyPlan{Text: msgRegionFailed}
	}

	buttons := make([]domain.Button, 0, maxRegionList)
	for _, c := range countries {
		if len(buttons) == maxRegionList {
			break
		}
		buttons = append(buttons, domain.Button{Label: c.Name, Payload: selPrefix + c.Name})
	}

	return domain.ReplyPlan{
		Text:    fmt.Sprintf("Страны в регионе %s:", region),
		Buttons: buttons,
	}
}

// splitTwoCountries splits user input into two country names. A ";" wins
// over ",", with whitespace as the last resort; components past the second
// are ignored.
func splitTwoCountries(text string) (string, string, bool) {
	var parts []string

	switch {
	case strings.Contains(text, ";"):
		parts = splitClean(text, ";")
	case strings.Contains(text, ","):
		parts = splitClean(text, ",")
	default:
		parts = strings.Fields(text)
	}

	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func splitClean(text, sep string) []string {
	var parts []string
	for _, p := range strings.Split(text, sep) {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

package service

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"countrybot/internal/domain"
)

// Fixed user-facing reply texts
const (
	msgNotFound       = "Не удалось найти страну. Проверьте название."
	msgAskCountry     = "Напиши название страны:"
	msgAskPair        = "Отправь два названия через ';' или ','."
	msgPairRequired   = "Нужно два названия через ';' или ','."
	msgPairFormat     = "Формат: страна1; страна2"
	msgSearchError    = "Ошибка поиска. Проверьте названия или попробуйте позже."
	msgOneNotFound    = "Одна из стран не найдена."
	msgSaveFailed     = "Не удалось сохранить настройки. Попробуйте позже."
	msgHomeNotSet     = "Домашняя страна ещё не установлена."
	msgHomeLoadFailed = "Не удалось загрузить данные о домашней стране."
	msgRegionFailed   = "Ошибка загрузки."
	msgUnknownAction  = "Неизвестное действие."
	msgPickRegion     = "Выберите регион:"
	msgMultipleFound  = "Найдено несколько совпадений:"
	msgGenericError   = "Произошла ошибка. Попробуйте позже."
)

const helpText = "Список доступных команд:\n\n" +
	"/info <страна> — показать информацию о стране\n" +
	"/pickcountry — выбрать страну через меню\n" +
	"/sethome <страна> — сохранить домашнюю страну\n" +
	"/home — показать вашу домашнюю страну\n" +
	"/compare <страна1;страна2> — сравнение двух стран\n" +
	"/help — подсказка по командам\n\n" +
	"Также можно просто написать название страны."

// formatCountryCard renders the detail card for one country as HTML
func formatCountryCard(c domain.CountryRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<b>%s</b>\n", html.EscapeString(c.Name))
	fmt.Fprintf(&b, "Столица: %s\n", html.EscapeString(orDash(strings.Join(c.Capital, ", "))))
	fmt.Fprintf(&b, "Регион: %s / %s\n",
		html.EscapeString(orDash(c.Region)),
		html.EscapeString(orDash(c.Subregion)))
	fmt.Fprintf(&b, "Население: %s\n", groupInt(c.Population))
	fmt.Fprintf(&b, "Площадь: %s км²\n", groupFloat(c.Area))
	fmt.Fprintf(&b, "Валюта(ы): %s\n", html.EscapeString(orDash(strings.Join(c.Currencies, ", "))))
	fmt.Fprintf(&b, "Языки: %s\n", html.EscapeString(orDash(strings.Join(c.Languages, ", "))))

	if c.FlagURL != "" {
		fmt.Fprintf(&b, "\nФлаг: %s", c.FlagURL)
	}

	return b.String()
}

// formatComparison renders a comparison report as HTML
func formatComparison(r domain.ComparisonReport) string {
	na := html.EscapeString(r.FirstName)
	nb := html.EscapeString(r.SecondName)

	lines := []string{
		fmt.Sprintf("<b>Сравнение: %s vs %s</b>", na, nb),
		"",
		fmt.Sprintf("Население: %s — %s", groupInt(r.PopulationFirst), na),
		fmt.Sprintf("Население: %s — %s", groupInt(r.PopulationSecond), nb),
		"",
		fmt.Sprintf("Площадь: %s км² — %s", groupFloat(r.AreaFirst), na),
		fmt.Sprintf("Площадь: %s км² — %s", groupFloat(r.AreaSecond), nb),
	}

	switch r.Population {
	case domain.OutcomeFirst:
		lines = append(lines, fmt.Sprintf("\nПо числу жителей лидирует <b>%s</b> (%s > %s).",
			na, groupInt(r.PopulationFirst), groupInt(r.PopulationSecond)))
	case domain.OutcomeSecond:
		lines = append(lines, fmt.Sprintf("\nПо числу жителей лидирует <b>%s</b> (%s > %s).",
			nb, groupInt(r.PopulationSecond), groupInt(r.PopulationFirst)))
	default:
		lines = append(lines, "\nПо числу жителей страны имеют одинаковое население.")
	}

	switch r.Area {
	case domain.OutcomeFirst:
		lines = append(lines, fmt.Sprintf("По площади больше <b>%s</b> (%s > %s км²).",
			na, groupFloat(r.AreaFirst), groupFloat(r.AreaSecond)))
	case domain.OutcomeSecond:
		lines = append(lines, fmt.Sprintf("По площади больше <b>%s</b> (%s > %s км²).",
			nb, groupFloat(r.AreaSecond), groupFloat(r.AreaFirst)))
	default:
		lines = append(lines, "Площади стран примерно равны.")
	}

	if r.Density == domain.OutcomeInsufficient {
		lines = append(lines, "Недостаточно данных для расчёта плотности населения (нет информации о площади).")
		return strings.Join(lines, "\n")
	}

	lines = append(lines, fmt.Sprintf("Плотность населения: %s чел./км² — %s, %s чел./км² — %s.",
		formatDensity(r.DensityFirst), na, formatDensity(r.DensitySecond), nb))

	switch r.Density {
	case domain.OutcomeFirst:
		lines = append(lines, fmt.Sprintf("По плотности населения плотнее <b>%s</b>.", na))
	case domain.OutcomeSecond:
		lines = append(lines, fmt.Sprintf("По плотности населения плотнее <b>%s</b>.", nb))
	default:
		lines = append(lines, "Плотность населения примерно одинакова.")
	}

	return strings.Join(lines, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// groupInt formats an integer with comma thousands separators
func groupInt(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// groupFloat formats a float with comma thousands separators, keeping the
// fractional part only when present
func groupFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	whole, frac, found := strings.Cut(s, ".")

	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return s
	}

	if found {
		return groupInt(n) + "." + frac
	}
	return groupInt(n)
}

func formatDensity(d float64) string {
	return strconv.FormatFloat(d, 'f', 1, 64)
}

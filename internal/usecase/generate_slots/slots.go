package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// expandTemplates разворачивает активные шаблоны в кандидатов на слоты
// для диапазона дат [from, to)
//
// Чистая функция от (шаблоны, существующие диапазоны, диапазон дат, локация):
// не ходит в БД, что позволяет тестировать генерацию без хранилища.
//
// Правила:
//   - шаблон применяется к датам, чей день недели совпадает с шаблонным
//   - окно [startTime, endTime) нарезается шагами slotDurationMinutes;
//     хвост короче полного шага отбрасывается, а не выдается коротким слотом
//   - кандидат, пересекающийся с существующим слотом или с уже выданным
//     кандидатом (в т.ч. из другого шаблона), молча пропускается -
//     именно это делает повторную генерацию идемпотентной
func expandTemplates(
	templates []*domain.ScheduleTemplate,
	existing []domain.SlotRange,
	from, to time.Time,
	loc *time.Location,
) ([]domain.SlotRange, error) {
	candidates := make([]domain.SlotRange, 0)

	for date := dateOnly(from, loc); date.Before(dateOnly(to, loc)); date = date.AddDate(0, 0, 1) {
		for _, tmpl := range templates {
			if !tmpl.IsActive || !tmpl.MatchesDate(date) {
				continue
			}

			ranges, err := expandWindow(tmpl, date, loc)
			if err != nil {
				return nil, err
			}

			for _, r := range ranges {
				if overlapsAny(r, existing) || overlapsAny(r, candidates) {
					continue
				}
				candidates = append(candidates, r)
			}
		}
	}

	return candidates, nil
}

// expandWindow нарезает окно одного шаблона на дату date
func expandWindow(tmpl *domain.ScheduleTemplate, date time.Time, loc *time.Location) ([]domain.SlotRange, error) {
	ranges := make([]domain.SlotRange, 0)

	cursor := tmpl.StartTime
	for cursor.IsBefore(tmpl.EndTime) {
		slotEnd, err := cursor.AddMinutes(tmpl.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		// Неполный хвост окна отбрасывается
		if slotEnd.IsAfter(tmpl.EndTime) {
			break
		}

		start, err := cursor.At(date, loc)
		if err != nil {
			return nil, err
		}
		end := start.Add(time.Duration(tmpl.SlotDurationMinutes) * time.Minute)

		ranges = append(ranges, domain.SlotRange{Start: start, End: end})

		cursor = slotEnd
	}

	return ranges, nil
}

// overlapsAny проверяет пересечение диапазона с любым из списка
func overlapsAny(r domain.SlotRange, ranges []domain.SlotRange) bool {
	for _, other := range ranges {
		if r.Overlaps(other) {
			return true
		}
	}
	return false
}

// dateOnly обнуляет время, оставляя только дату в указанной локации
func dateOnly(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

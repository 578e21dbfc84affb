package booking

import (
	"time"

	"github.com/kodbuds/leads-service/internal/domain"
)

// Draft черновик заявки на пробное занятие.
// Черновик принадлежит ровно одной открытой форме и мутируется только
// синхронно, по одному действию пользователя за раз - никакой защиты от
// конкурентного доступа здесь нет намеренно.
//
// Правила связки дата/слот:
//   - слот можно выбрать только после даты и только из списка этой даты;
//   - смена даты всегда сбрасывает слот, даже если та же подпись слота
//     встречается и в новом списке.
type Draft struct {
	Name          string
	Email         string
	Phone         string
	ChildAgeClass string

	date     *time.Time
	slotList []string
	slot     string
	consumed bool
}

// NewDraft создает пустой черновик
func NewDraft() *Draft {
	return &Draft{slotList: []string{}}
}

// SelectDate выбирает дату пробного занятия.
// Дата отклоняется без изменения состояния, если занятия в этот день недели
// не проводятся или дата в прошлом. UI обязан блокировать такие даты сам,
// но контроллер перепроверяет.
// При успешном выборе список слотов пересчитывается, а выбранный слот
// безусловно сбрасывается.
func (d *Draft) SelectDate(date time.Time, now time.Time) error {
	if !domain.IsBookableWeekday(date) {
		return ErrDateNotBookable
	}
	if domain.IsDateInPast(date, now) {
		return ErrDateInPast
	}

	selected := date
	d.date = &selected
	d.slotList = domain.TrialSlotsFor(date)
	d.slot = ""
	return nil
}

// SelectSlot выбирает временной слот.
// Принимается только если дата выбрана и слот присутствует в текущем списке,
// иначе отклоняется без изменения состояния.
func (d *Draft) SelectSlot(slot string) error {
	if d.date == nil {
		return ErrNoDateSelected
	}
	for _, s := range d.slotList {
		if s == slot {
			d.slot = slot
			return nil
		}
	}
	return ErrSlotNotOffered
}

// ClearDate сбрасывает дату, список слотов и выбранный слот
func (d *Draft) ClearDate() {
	d.date = nil
	d.slotList = []string{}
	d.slot = ""
}

// SelectedDate возвращает выбранную дату, если она установлена
func (d *Draft) SelectedDate() (time.Time, bool) {
	if d.date == nil {
		return time.Time{}, false
	}
	return *d.date, true
}

// Slots возвращает список слотов для выбранной даты
func (d *Draft) Slots() []string {
	return append([]string(nil), d.slotList...)
}

// SelectedSlot возвращает выбранный слот, если он установлен
func (d *Draft) SelectedSlot() (string, bool) {
	if d.slot == "" {
		return "", false
	}
	return d.slot, true
}

// CanSubmit returns true if the draft is complete and may be submitted:
// все контактные поля заполнены, дата выбрана, слот выбран
func (d *Draft) CanSubmit() bool {
	return d.Name != "" &&
		d.Email != "" &&
		d.Phone != "" &&
		d.ChildAgeClass != "" &&
		d.date != nil &&
		d.slot != ""
}

// Freeze фиксирует черновик в неизменяемую запись заявки.
// Черновик фиксируется ровно один раз; после фиксации он считается
// использованным, на следующую заявку создается новый черновик.
func (d *Draft) Freeze() (*domain.TrialRequest, error) {
	if d.consumed {
		return nil, ErrDraftConsumed
	}
	if !d.CanSubmit() {
		return nil, ErrDraftIncomplete
	}

	d.consumed = true
	return &domain.TrialRequest{
		Name:          d.Name,
		Email:         d.Email,
		Phone:         d.Phone,
		ChildAgeClass: d.ChildAgeClass,
		PreferredTime: domain.FormatLongDate(*d.date) + " at " + d.slot,
	}, nil
}

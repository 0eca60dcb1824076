package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// TimeString время в формате "HH:MM" или "HH:MM:SS" без привязки к часовому поясу.
// Слоты сравниваются как строки одной канонической формы, поэтому никакой
// конвертации часовых поясов здесь нет: часовой пояс хранится отдельной
// текстовой меткой и используется только для отображения.
type TimeString string

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM or HH:MM:SS")

	// ErrTimeOutOfRange возвращается, когда значение выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time value out of range")
)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])(:[0-5][0-9])?$`)

// ParseTimeString разбирает строку "HH:MM" или "HH:MM:SS" с проверкой границ
func ParseTimeString(s string) (TimeString, error) {
	t := TimeString(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// FromMinutes создает TimeString в канонической форме "HH:MM:SS"
// из количества минут с полуночи
func FromMinutes(minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60))
}

// Validate проверяет формат и границы: часы [0,23], минуты и секунды [0,59]
func (t TimeString) Validate() error {
	if !timePattern.MatchString(string(t)) {
		return ErrInvalidTimeFormat
	}
	return nil
}

// Normalize приводит время к канонической форме хранения "HH:MM:SS".
// Все значения, попадающие в БД, проходят через эту функцию, чтобы
// сравнение строк на чтении было надежным.
func (t TimeString) Normalize() (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	if len(t) == 8 {
		return t, nil
	}
	return t + ":00", nil
}

// Minutes возвращает количество минут с полуночи (секунды отбрасываются).
// Границы здесь не проверяются: строгая проверка выполняется в Validate
// на пути записи.
func (t TimeString) Minutes() int {
	if len(t) < 5 {
		return 0
	}
	h, _ := strconv.Atoi(string(t[:2]))
	m, _ := strconv.Atoi(string(t[3:5]))
	return h*60 + m
}

// AddMinutes возвращает время, сдвинутое на указанное количество минут
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := t.Minutes() + minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, total)
	}
	return FromMinutes(total), nil
}

// IsBefore сравнивает времена с точностью до минуты
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter сравнивает времена с точностью до минуты
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

func (t TimeString) String() string {
	return string(t)
}

// Scan реализует sql.Scanner: lib/pq отдает колонки типа time
// как []byte "15:04:05" или как time.Time в зависимости от настроек
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case []byte:
		*t = TimeString(v)
		return nil
	case string:
		*t = TimeString(v)
		return nil
	case time.Time:
		*t = TimeString(v.Format("15:04:05"))
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Package validation проверяет тела запросов по декларативным таблицам правил.
// Схема — упорядоченный список полей с ограничениями; нарушения собираются
// все сразу, по одному сообщению на нарушение.
package validation

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/bhavanishankera7/todo-list-app/internal/models"
)

type check func(value any) string

type rule struct {
	field       string
	required    bool
	requiredMsg string
	checks      []check
}

type Schema struct {
	rules []rule
}

// Validate прогоняет payload по таблице правил. Пустой результат — успех.
// Отсутствующее или null-поле нарушает только required; неизвестные поля
// игнорируются.
func (s Schema) Validate(payload map[string]any) []string {
	var details []string
	for _, r := range s.rules {
		value, ok := payload[r.field]
		if !ok || value == nil {
			if r.required {
				details = append(details, r.requiredMsg)
			}
			continue
		}
		for _, c := range r.checks {
			if msg := c(value); msg != "" {
				details = append(details, msg)
				break
			}
		}
	}
	return details
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ParseDate принимает RFC 3339 или короткую форму YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", s)
}

func stringBetween(field string, min, max int, minMsg, maxMsg string) check {
	return func(value any) string {
		s, ok := value.(string)
		if !ok {
			return field + " must be a string"
		}
		n := utf8.RuneCountInString(s)
		if n < min {
			return minMsg
		}
		if max > 0 && n > max {
			return maxMsg
		}
		return ""
	}
}

func email(field, msg string) check {
	return func(value any) string {
		s, ok := value.(string)
		if !ok {
			return field + " must be a string"
		}
		if !emailPattern.MatchString(s) {
			return msg
		}
		return ""
	}
}

func oneOf(field string, allowed []string, msg string) check {
	return func(value any) string {
		s, ok := value.(string)
		if !ok {
			return field + " must be a string"
		}
		for _, a := range allowed {
			if s == a {
				return ""
			}
		}
		return msg
	}
}

func date(field, msg string) check {
	return func(value any) string {
		s, ok := value.(string)
		if !ok {
			return field + " must be a string"
		}
		if _, err := ParseDate(s); err != nil {
			return msg
		}
		return ""
	}
}

func futureDate(field, parseMsg, futureMsg string) check {
	return func(value any) string {
		s, ok := value.(string)
		if !ok {
			return field + " must be a string"
		}
		t, err := ParseDate(s)
		if err != nil {
			return parseMsg
		}
		if !t.After(time.Now()) {
			return futureMsg
		}
		return ""
	}
}

// Register — схема регистрации пользователя.
var Register = Schema{rules: []rule{
	{field: "name", required: true, requiredMsg: "Name is required", checks: []check{
		stringBetween("Name", 2, 50,
			"Name must be at least 2 characters long",
			"Name cannot exceed 50 characters"),
	}},
	{field: "email", required: true, requiredMsg: "Email is required", checks: []check{
		email("Email", "Please provide a valid email address"),
	}},
	{field: "password", required: true, requiredMsg: "Password is required", checks: []check{
		stringBetween("Password", 6, 100,
			"Password must be at least 6 characters long",
			"Password cannot exceed 100 characters"),
	}},
}}

// Login — схема входа. Пароль достаточно непустой.
var Login = Schema{rules: []rule{
	{field: "email", required: true, requiredMsg: "Email is required", checks: []check{
		email("Email", "Please provide a valid email address"),
	}},
	{field: "password", required: true, requiredMsg: "Password is required", checks: []check{
		stringBetween("Password", 1, 0,
			"Password is required", ""),
	}},
}}

// CreateTodo — схема создания задачи. Дата должна быть строго в будущем.
var CreateTodo = Schema{rules: []rule{
	{field: "title", required: true, requiredMsg: "Title is required", checks: []check{
		stringBetween("Title", 1, 100,
			"Title cannot be empty",
			"Title cannot exceed 100 characters"),
	}},
	{field: "description", checks: []check{
		stringBetween("Description", 0, 1000,
			"", "Description cannot exceed 1000 characters"),
	}},
	{field: "priority", checks: []check{
		oneOf("Priority", models.Priorities(), "Priority must be low, medium, or high"),
	}},
	{field: "due_date", checks: []check{
		futureDate("Due date",
			"Due date must be a valid date",
			"Due date must be in the future"),
	}},
}}

// UpdateTodo — все поля опциональны; требование будущей даты на обновлении
// не действует, проверяется только парсинг.
var UpdateTodo = Schema{rules: []rule{
	{field: "title", checks: []check{
		stringBetween("Title", 1, 100,
			"Title cannot be empty",
			"Title cannot exceed 100 characters"),
	}},
	{field: "description", checks: []check{
		stringBetween("Description", 0, 1000,
			"", "Description cannot exceed 1000 characters"),
	}},
	{field: "status", checks: []check{
		oneOf("Status", models.Statuses(), "Status must be pending, in_progress, or completed"),
	}},
	{field: "priority", checks: []check{
		oneOf("Priority", models.Priorities(), "Priority must be low, medium, or high"),
	}},
	{field: "due_date", checks: []check{
		date("Due date", "Due date must be a valid date"),
	}},
}}

package survey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fitbite-be/internal/entity"
)

// Answer is one submitted value keyed by question id.
type Answer struct {
	QuestionId string
	Value      interface{}
}

var (
	errScaleNumeric  = errors.New("skalės klausimams reikia skaitinės reikšmės")
	errScaleRange    = errors.New("skalės reikšmė už ribų")
	errSingleChoice  = errors.New("pasirinkite vieną iš pasiūlytų variantų")
	errInvalidOption = errors.New("pasirinktas variantas neleistinas")
	errMultiChoice   = errors.New("pasirinkite bent vieną variantą")
	errTextAnswer    = errors.New("komentarai turi būti tekstiniai")
	errUnknownId     = errors.New("nežinomas klausimo ID")
)

// ValidateAnswers checks submitted answers against the survey type's static
// catalog: every catalog question must be answered, no unknown ids, and each
// value must match the question's type. Returns the normalized answer map.
func ValidateAnswers(surveyType entity.SurveyType, answers []Answer) (map[string]interface{}, error) {
	questions := QuestionsFor(surveyType)
	questionMap := make(map[string]Question, len(questions))
	for _, q := range questions {
		questionMap[q.Id] = q
	}

	provided := make(map[string]bool, len(answers))
	for _, answer := range answers {
		provided[answer.QuestionId] = true
	}

	var missing []string
	for _, q := range questions {
		if !provided[q.Id] {
			missing = append(missing, q.Id)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("trūksta atsakymų klausimams: %s", strings.Join(missing, ", "))
	}

	validated := make(map[string]interface{}, len(answers))
	for _, answer := range answers {
		question, ok := questionMap[answer.QuestionId]
		if !ok {
			return nil, errUnknownId
		}

		value, err := validateValue(question, answer.Value)
		if err != nil {
			return nil, err
		}
		validated[answer.QuestionId] = value
	}

	return validated, nil
}

func validateValue(question Question, value interface{}) (interface{}, error) {
	switch question.Type {
	case QuestionScale:
		number, err := coerceInt(value)
		if err != nil {
			return nil, errScaleNumeric
		}
		if number < question.ScaleMin || number > question.ScaleMax {
			return nil, errScaleRange
		}
		return number, nil

	case QuestionSingleChoice:
		text, ok := value.(string)
		if !ok {
			return nil, errSingleChoice
		}
		if !contains(question.Options, text) {
			return nil, errInvalidOption
		}
		return text, nil

	case QuestionMultiChoice:
		items, err := coerceStringList(value)
		if err != nil || len(items) == 0 {
			return nil, errMultiChoice
		}
		for _, item := range items {
			if !contains(question.Options, item) {
				return nil, errInvalidOption
			}
		}
		return items, nil

	case QuestionText:
		if value == nil {
			return "", nil
		}
		text, ok := value.(string)
		if !ok {
			return nil, errTextAnswer
		}
		return text, nil
	}

	return nil, errUnknownId
}

// coerceInt accepts the numeric shapes JSON decoding produces.
func coerceInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	}
	return 0, fmt.Errorf("not a number: %v", value)
}

func coerceStringList(value interface{}) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []interface{}:
		items := make([]string, 0, len(v))
		for _, raw := range v {
			text, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("not a string list")
			}
			items = append(items, text)
		}
		return items, nil
	}
	return nil, fmt.Errorf("not a list")
}

func contains(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}

package vehicle

import (
	"errors"
	"fmt"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/errs"
)

// ErrConditionIsNotConstructed is returned when a Condition instance was not
// created through NewCondition.
var ErrConditionIsNotConstructed = errors.New("Condition must be created via NewCondition constructor")

// ConditionGrade enumerates the fixed vocabulary describing a vehicle's
// state. Only these five values are accepted.
type ConditionGrade int

const (
	ConditionUnknown ConditionGrade = iota
	ConditionNew
	ConditionUsedExcellent
	ConditionUsedGood
	ConditionUsedFair
	ConditionDamaged
)

func getConditionGradeStrings() map[ConditionGrade]string {
	return map[ConditionGrade]string{
		ConditionNew:           "new",
		ConditionUsedExcellent: "used-excellent",
		ConditionUsedGood:      "used-good",
		ConditionUsedFair:      "used-fair",
		ConditionDamaged:       "damaged",
	}
}

// ConditionGradeFromString parses a wire-format grade name.
func ConditionGradeFromString(s string) (ConditionGrade, error) {
	for grade, str := range getConditionGradeStrings() {
		if str == s {
			return grade, nil
		}
	}
	return ConditionUnknown, errs.NewValueIsInvalidErrorWithCause("condition",
		fmt.Errorf("%q is not a known condition grade", s))
}

// Validate checks the grade is one of the five accepted values.
func (g ConditionGrade) Validate() error {
	if _, ok := getConditionGradeStrings()[g]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("condition",
			fmt.Errorf("%d is not a valid condition grade", g))
	}
	return nil
}

// String returns the wire-format name of the grade.
func (g ConditionGrade) String() string {
	if str, ok := getConditionGradeStrings()[g]; ok {
		return str
	}
	return "unknown"
}

// Condition is the descriptive grade record attached to a vehicle.
// At most one exists per vehicle; it has no transitions of its own.
type Condition struct {
	id    kernel.UUID
	grade ConditionGrade

	isConstructed bool
}

// NewCondition creates a condition record with a validated grade.
func NewCondition(id kernel.UUID, grade ConditionGrade) (*Condition, error) {
	condition := &Condition{
		isConstructed: true,
	}

	if err := errors.Join(
		condition.setID(id),
		condition.setGrade(grade),
	); err != nil {
		return nil, err
	}

	return condition, nil
}

// Validate ensures the Condition instance was properly constructed.
func (c *Condition) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrConditionIsNotConstructed
	}

	return nil
}

// ID returns the condition record's unique identifier.
func (c *Condition) ID() kernel.UUID {
	return c.id
}

// Grade returns the condition grade.
func (c *Condition) Grade() ConditionGrade {
	return c.grade
}

func (c *Condition) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Condition) setGrade(grade ConditionGrade) error {
	if err := grade.Validate(); err != nil {
		return err
	}
	c.grade = grade
	return nil
}

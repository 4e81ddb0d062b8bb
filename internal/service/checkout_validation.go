package service

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/wahhajahmed/KarachiSofas/internal/areas"

	"github.com/go-playground/validator/v10"
)

var simpleEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CheckoutValidationError 结账表单字段校验失败
type CheckoutValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *CheckoutValidationError) Error() string {
	return e.Message
}

// Is 支持 errors.Is(err, ErrCheckoutValidation)
func (e *CheckoutValidationError) Is(target error) bool {
	return target == ErrCheckoutValidation
}

// CheckoutForm 结账客户信息
type CheckoutForm struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Area          string `json:"area"`
	Block         string `json:"block"`
	Landmark      string `json:"landmark"`
	PaymentMethod string `json:"payment_method"`
}

type checkoutRule struct {
	field   string
	value   func(form CheckoutForm) string
	tag     string
	message string
}

// checkoutRules 按顺序校验，第一条失败即终止
var checkoutRules = []checkoutRule{
	{field: "name", value: func(f CheckoutForm) string { return f.Name }, tag: "required", message: "Full name is required."},
	{field: "name", value: func(f CheckoutForm) string { return f.Name }, tag: "min=3", message: "Name must be at least 3 characters long."},
	{field: "email", value: func(f CheckoutForm) string { return f.Email }, tag: "required", message: "Email is required."},
	{field: "email", value: func(f CheckoutForm) string { return f.Email }, tag: "simple_email", message: "Please enter a valid email address (e.g., name@example.com)."},
	{field: "phone", value: func(f CheckoutForm) string { return f.Phone }, tag: "required", message: "Phone number is required."},
	{field: "phone", value: func(f CheckoutForm) string { return digitsOnly(f.Phone) }, tag: "min=10", message: "Please enter a valid phone number (at least 10 digits)."},
	{field: "address", value: func(f CheckoutForm) string { return f.Address }, tag: "required", message: "Full address is required."},
	{field: "address", value: func(f CheckoutForm) string { return f.Address }, tag: "min=10", message: "Address must be at least 10 characters long."},
	{field: "area", value: func(f CheckoutForm) string { return f.Area }, tag: "required,known_area", message: "Please select your area."},
	{field: "block", value: func(f CheckoutForm) string { return f.Area + "\x00" + f.Block }, tag: "area_block", message: "Please select your block/sector."},
	{field: "landmark", value: func(f CheckoutForm) string { return f.Landmark }, tag: "required", message: "Nearest landmark is required."},
}

func newCheckoutValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
		return simpleEmailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("known_area", func(fl validator.FieldLevel) bool {
		return areas.HasArea(fl.Field().String())
	})
	_ = v.RegisterValidation("area_block", func(fl validator.FieldLevel) bool {
		parts := strings.SplitN(fl.Field().String(), "\x00", 2)
		if len(parts) != 2 || parts[1] == "" {
			return false
		}
		return areas.HasBlock(parts[0], parts[1])
	})
	return v
}

// normalize 去除首尾空白
func (f CheckoutForm) normalize() CheckoutForm {
	return CheckoutForm{
		Name:          strings.TrimSpace(f.Name),
		Email:         strings.TrimSpace(f.Email),
		Phone:         strings.TrimSpace(f.Phone),
		Address:       strings.TrimSpace(f.Address),
		Area:          strings.TrimSpace(f.Area),
		Block:         strings.TrimSpace(f.Block),
		Landmark:      strings.TrimSpace(f.Landmark),
		PaymentMethod: strings.TrimSpace(f.PaymentMethod),
	}
}

func validateCheckoutForm(v *validator.Validate, form CheckoutForm) error {
	for _, rule := range checkoutRules {
		if err := v.Var(rule.value(form), rule.tag); err != nil {
			return &CheckoutValidationError{Field: rule.field, Message: rule.message}
		}
	}
	return nil
}

func digitsOnly(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

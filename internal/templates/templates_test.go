package templates

import (
	"strings"
	"testing"

	"github.com/dinject/dinject/internal/model"
)

func TestGoStringSlice(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected string
	}{
		{name: "empty", values: nil, expected: "nil"},
		{name: "single", values: []string{"Heater"}, expected: `[]string{"Heater"}`},
		{name: "multiple", values: []string{"Heater", "ElectricHeater"}, expected: `[]string{"Heater", "ElectricHeater"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := goStringSlice(tt.values); got != tt.expected {
				t.Errorf("goStringSlice(%v) = %q, want %q", tt.values, got, tt.expected)
			}
		})
	}
}

func TestPriorityClassExpr(t *testing.T) {
	tests := []struct {
		name     string
		desc     *model.BeanDescriptor
		expected string
	}{
		{name: "primary", desc: &model.BeanDescriptor{Primary: true}, expected: "dinject.Primary"},
		{name: "secondary", desc: &model.BeanDescriptor{Secondary: true}, expected: "dinject.Secondary"},
		{name: "normal", desc: &model.BeanDescriptor{}, expected: "dinject.Normal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PriorityClassExpr(tt.desc); got != tt.expected {
				t.Errorf("PriorityClassExpr() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExecuteTemplateRegistration(t *testing.T) {
	data := RegistrationData{
		VarName:         "bean0",
		BaseType:        "ElectricHeater",
		Qualifier:       "electric",
		AssignableTypes: []string{"ElectricHeater", "Heater"},
		Annotations:     []string{"bean"},
		PriorityClass:   "dinject.Primary",
		ConstructorCall: "NewElectricHeater()",
	}

	out, err := ExecuteTemplate("registration", RegistrationTemplate, data)
	if err != nil {
		t.Fatalf("ExecuteTemplate returned error: %v", err)
	}

	for _, want := range []string{
		"bean0 := NewElectricHeater()",
		`Qualifier:       "electric"`,
		"AssignableTypes: []string{\"ElectricHeater\", \"Heater\"}",
		"PriorityClass:   dinject.Primary",
		"builder.Register(bean0Entry)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered registration missing %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "RegisterLifecycle") {
		t.Errorf("no lifecycle hooks declared, should not call RegisterLifecycle:\n%s", out)
	}
}

func TestExecuteTemplateRegistrationWithLifecycle(t *testing.T) {
	data := RegistrationData{
		VarName:           "bean1",
		BaseType:          "Pump",
		AssignableTypes:   []string{"Pump"},
		PriorityClass:     "dinject.Normal",
		HasPostConstruct:  true,
		PostConstructName: "Start",
		HasPreDestroy:     true,
		PreDestroyName:    "Stop",
		ResolveStmts: []string{
			"\tbean1Arg0, err := dinject.ResolveAs[Motor](builder, \"Motor\", \"\")\n\tif err != nil {\n\t\treturn fmt.Errorf(\"construct Pump: resolve Motor: %w\", err)\n\t}",
		},
		ConstructorCall: "NewPump(bean1Arg0)",
	}

	out, err := ExecuteTemplate("registration", RegistrationTemplate, data)
	if err != nil {
		t.Fatalf("ExecuteTemplate returned error: %v", err)
	}

	for _, want := range []string{
		"bean1Arg0, err := dinject.ResolveAs[Motor]",
		"bean1 := NewPump(bean1Arg0)",
		"PostConstruct:   func() error { return bean1.Start() }",
		"PreDestroy:      func() error { return bean1.Stop() }",
		"builder.RegisterLifecycle(bean1Entry)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered registration missing %q, got:\n%s", want, out)
		}
	}
}

func TestExecuteTemplateRegistrationWithFieldAndMethodInjection(t *testing.T) {
	data := RegistrationData{
		VarName:         "bean2",
		BaseType:        "Child",
		AssignableTypes: []string{"Child"},
		PriorityClass:   "dinject.Normal",
		ConstructorCall: "NewChild()",
		FieldAssignments: []string{
			"\tbean2.Heater = bean0",
		},
		MethodCalls: []string{
			"\tbean2.Configure(bean1)",
		},
	}

	out, err := ExecuteTemplate("registration", RegistrationTemplate, data)
	if err != nil {
		t.Fatalf("ExecuteTemplate returned error: %v", err)
	}

	constructIdx := strings.Index(out, "bean2 := NewChild()")
	fieldIdx := strings.Index(out, "bean2.Heater = bean0")
	methodIdx := strings.Index(out, "bean2.Configure(bean1)")
	entryIdx := strings.Index(out, "bean2Entry := &dinject.Entry{")

	if constructIdx < 0 || fieldIdx < 0 || methodIdx < 0 || entryIdx < 0 {
		t.Fatalf("missing expected lines in:\n%s", out)
	}
	if !(constructIdx < fieldIdx && fieldIdx < methodIdx && methodIdx < entryIdx) {
		t.Errorf("expected construct -> field assign -> method call -> Entry order, got:\n%s", out)
	}
}

func TestExecuteTemplateModuleHeader(t *testing.T) {
	out, err := ExecuteTemplate("module-header", ModuleHeaderTemplate, ModuleHeaderData{
		PackageName: "heaters",
		ImportPaths: []string{"example.com/widgets/internal/motor"},
	})
	if err != nil {
		t.Fatalf("ExecuteTemplate returned error: %v", err)
	}

	for _, want := range []string{
		"package heaters",
		`"example.com/widgets/internal/motor"`,
		"func Register(builder *dinject.Builder) error {",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered header missing %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, `"fmt"`) {
		t.Errorf("NeedsFmt is false, header should not import fmt:\n%s", out)
	}
}

func TestExecuteTemplateModuleHeaderWithFmtNeeded(t *testing.T) {
	out, err := ExecuteTemplate("module-header", ModuleHeaderTemplate, ModuleHeaderData{
		PackageName: "widgets",
		NeedsFmt:    true,
	})
	if err != nil {
		t.Fatalf("ExecuteTemplate returned error: %v", err)
	}
	if !strings.Contains(out, `"fmt"`) {
		t.Errorf("NeedsFmt is true, header should import fmt:\n%s", out)
	}
}

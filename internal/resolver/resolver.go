// Package resolver turns classified layouts into emission-ready plans:
// explicit zero values for constructor fields and a variant type for
// every property registration.
package resolver

import (
	"github.com/seitarof/gdclassgen/gdext"
	"github.com/seitarof/gdclassgen/internal/classifier"
)

// PropertyPlan carries one property together with the variant type its
// registration call will use.
type PropertyPlan struct {
	Field   classifier.PropertyField
	Variant gdext.VariantType
	// Rule names the rule that decided the variant.
	Rule string
}

// FallbackRule tags plans no rule could decide. They register as Int.
const FallbackRule = "fallback"

// Resolver decides constructor assignments and registration variants.
type Resolver interface {
	Resolve(layout *classifier.Layout) ClassPlan
}

type resolverImpl struct {
	rules []Rule
}

// Rule tries to decide the variant for one property field.
type Rule interface {
	Name() string
	Try(prop classifier.PropertyField) (gdext.VariantType, bool)
}

// New builds a resolver with a rule chain.
func New(rules ...Rule) Resolver {
	return &resolverImpl{rules: rules}
}

func (r *resolverImpl) Resolve(layout *classifier.Layout) ClassPlan {
	plan := ClassPlan{Layout: layout}
	for _, f := range layout.Plain {
		plan.Inits = append(plan.Inits, FieldInit{Name: f.Name, Expr: ZeroExpr(f.Type)})
	}
	for _, p := range layout.Properties {
		plan.Properties = append(plan.Properties, r.resolveOne(p))
	}
	return plan
}

func (r *resolverImpl) resolveOne(prop classifier.PropertyField) PropertyPlan {
	for _, rule := range r.rules {
		if variant, ok := rule.Try(prop); ok {
			return PropertyPlan{Field: prop, Variant: variant, Rule: rule.Name()}
		}
	}
	return PropertyPlan{Field: prop, Variant: gdext.VariantInt, Rule: FallbackRule}
}

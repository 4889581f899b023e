package lookup

import "github.com/andresuchdata/printfloor/internal/domain"

func OrderKey(o domain.Order) Key { return Key{Customer: o.Customer, Style: o.Style} }

func PlanKey(p domain.LoadingPlanItem) Key { return Key{Customer: p.Customer, Style: p.Style} }

func DevelopmentKey(d domain.DevelopmentItem) Key { return Key{Customer: d.Customer, Style: d.Style} }

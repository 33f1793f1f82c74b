package domain

import "github.com/shopspring/decimal"

// Pricer 购物车派生定价规则
type Pricer struct {
	// 免运费门槛（含）
	FreeShippingThreshold decimal.Decimal
	// 固定运费
	FlatShippingRate decimal.Decimal
	// 统一税率，无地区逻辑
	TaxRate decimal.Decimal
	// 超重起征重量（kg）
	HeavyWeightThreshold decimal.Decimal
	// 超重附加费步长（kg）
	HeavyWeightStep decimal.Decimal
	// 每步附加运费
	HeavyWeightSurcharge decimal.Decimal
}

// DefaultPricer 默认定价规则：满 99 免运费，固定运费 9.99，税率 8%
func DefaultPricer() Pricer {
	return Pricer{
		FreeShippingThreshold: decimal.RequireFromString("99.00"),
		FlatShippingRate:      decimal.RequireFromString("9.99"),
		TaxRate:               decimal.RequireFromString("0.08"),
		HeavyWeightThreshold:  decimal.NewFromInt(10),
		HeavyWeightStep:       decimal.NewFromInt(5),
		HeavyWeightSurcharge:  decimal.RequireFromString("2.99"),
	}
}

// NewPricer 从十进制字符串构建定价规则，任一字段不合法时报错
func NewPricer(freeShippingThreshold, flatShippingRate, taxRate, heavyWeightThreshold, heavyWeightStep, heavyWeightSurcharge string) (Pricer, error) {
	var p Pricer
	var err error

	fields := []struct {
		dst *decimal.Decimal
		raw string
	}{
		{&p.FreeShippingThreshold, freeShippingThreshold},
		{&p.FlatShippingRate, flatShippingRate},
		{&p.TaxRate, taxRate},
		{&p.HeavyWeightThreshold, heavyWeightThreshold},
		{&p.HeavyWeightStep, heavyWeightStep},
		{&p.HeavyWeightSurcharge, heavyWeightSurcharge},
	}
	for _, f := range fields {
		if *f.dst, err = decimal.NewFromString(f.raw); err != nil {
			return Pricer{}, err
		}
	}
	return p, nil
}

// Quote 一次结算报价
type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	// 距离免运费还差的金额，已免运费时为 nil
	FreeShippingRemaining *decimal.Decimal `json:"free_shipping_remaining,omitempty"`
}

// ShippingCost 运费：达到门槛免运费，否则固定运费
// 提供重量时，超过起征重量部分每满一步加收附加费（不足一步按一步计）
func (p Pricer) ShippingCost(subtotal decimal.Decimal, weight *decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(p.FreeShippingThreshold) {
		return decimal.Zero
	}

	cost := p.FlatShippingRate
	if weight != nil && weight.GreaterThan(p.HeavyWeightThreshold) {
		steps := weight.Sub(p.HeavyWeightThreshold).Div(p.HeavyWeightStep).Ceil()
		cost = cost.Add(steps.Mul(p.HeavyWeightSurcharge))
	}
	return cost.Round(2)
}

// QuoteFor 由小计派生完整报价；weight 缺失时退化为固定运费规则
func (p Pricer) QuoteFor(subtotal decimal.Decimal, weight *decimal.Decimal) Quote {
	shipping := p.ShippingCost(subtotal, weight)
	tax := subtotal.Mul(p.TaxRate).Round(2)
	total := subtotal.Add(shipping).Add(tax)

	q := Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    total,
	}

	if shipping.GreaterThan(decimal.Zero) {
		remaining := p.FreeShippingThreshold.Sub(subtotal).Round(2)
		q.FreeShippingRemaining = &remaining
	}

	return q
}

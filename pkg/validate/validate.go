// Package validate 提供商品 SKU、邮箱、电话等格式校验与展示辅助函数
// 所有校验均为布尔谓词，非法输入不抛错，由调用方决定如何呈现
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// SKU 格式：3-4 个大写字母 + 连字符 + 3 位数字
	skuPattern   = regexp.MustCompile(`^[A-Z]{3,4}-\d{3}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
	digitPattern = regexp.MustCompile(`\D`)

	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
	slugTrim     = regexp.MustCompile(`^-+|-+$`)
)

// SKU 校验商品 SKU 格式
func SKU(sku string) bool {
	return skuPattern.MatchString(sku)
}

// Email 校验邮箱格式
func Email(email string) bool {
	return emailPattern.MatchString(email)
}

// Phone 校验电话格式，去掉非数字字符后至少 10 位
func Phone(phone string) bool {
	if !phonePattern.MatchString(phone) {
		return false
	}
	digits := digitPattern.ReplaceAllString(phone, "")
	return len(digits) >= 10
}

// Slugify 将文本转换为 URL-safe 的 slug
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return slugTrim.ReplaceAllString(s, "")
}

// TruncateText 截断文本并追加省略号
func TruncateText(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	return strings.TrimSpace(text[:maxLength]) + "..."
}

// FormatPrice 将金额格式化为美元显示形式，如 $1,234.56
func FormatPrice(price decimal.Decimal) string {
	s := price.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	var sb strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}

	out := "$" + sb.String() + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// ShippingEstimate 将预计送达天数转换为展示文案
func ShippingEstimate(days int) string {
	switch {
	case days == 1:
		return "Next business day"
	case days <= 2:
		return fmt.Sprintf("%d business days", days)
	case days <= 5:
		return fmt.Sprintf("%d-%d business days", days, days+1)
	default:
		return fmt.Sprintf("%d-%d business days", days, days+2)
	}
}

package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a ratio bar like [████░░░░] 3/8.
// The bar is colored by completion: green >66%, yellow 33-66%, red <33%.
func RenderProgress(done, total, width int) string {
	if width < 2 {
		width = 2
	}
	if total <= 0 {
		return fmt.Sprintf("[%s] %s", Dim(strings.Repeat(emptyBlock, width)), Dim("0/0"))
	}
	if done < 0 {
		done = 0
	}
	if done > total {
		done = total
	}

	pct := float64(done) / float64(total)
	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), done, total)
}

package discord

import "regexp"

// Потолок Discord — 2000 символов на сообщение; режем с запасом,
// чтобы осталось место под метку времени.
const MessageSplitLimit = 1500

// Точка разреза в конце окна: хвост слова после пробела, завершённый
// :код: с хвостом или незавершённый :код.
var breakPointPattern = regexp.MustCompile(`(\s+[^:\s]*$)|\s*(:[^:\s]+:[^:\s]*$)|\s*:[^\s:]*$`)

// SplitMessage режет текст на фрагменты не длиннее limit символов, разрывая
// только по безопасным границам: по пробелам и вне кодов, ограниченных
// двоеточиями. Если безопасной границы в окне нет, режем жёстко по границе
// окна. Курсор двигается на длину принятого фрагмента, так что отрезанный
// хвост попадает в следующее окно.
func SplitMessage(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var chunks []string
	i := 0
	for i < len(runes) {
		end := i + limit
		if end > len(runes) {
			end = len(runes)
		}
		window := string(runes[i:end])
		if window == "" {
			i++
			continue
		}

		trimmed := breakPointPattern.ReplaceAllString(window, "")
		if trimmed == "" {
			chunks = append(chunks, window)
			i = end
		} else {
			chunks = append(chunks, trimmed)
			i += len([]rune(trimmed))
		}
	}

	return chunks
}

package generator

import "context"

// Fragment is one streamed chunk of model output. A terminal upstream
// failure arrives as the last fragment with Err set.
type Fragment struct {
	Text string
	Err  error
}

// LLMClient 抽象大模型客户端，便于替换/Mock。
//
// Stream opens one generation call and delivers fragments in upstream
// arrival order on the returned channel. The channel is closed after the
// last fragment; closure is the completion sentinel. The stream is not
// restartable. Cancelling ctx abandons the upstream call.
type LLMClient interface {
	Stream(ctx context.Context, p Prompt) (<-chan Fragment, error)
}

// LLMSettings 提供给具体实现的基础配置。
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

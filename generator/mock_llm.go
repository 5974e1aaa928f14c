package generator

import "context"

// ScriptedLLM 一个简单的占位实现，便于本地调试与测试，不调用外部模型。
// It replays Fragments in order, then Err (if set), then closes.
type ScriptedLLM struct {
	Fragments []string
	Err       error
}

func (s ScriptedLLM) Stream(ctx context.Context, _ Prompt) (<-chan Fragment, error) {
	out := make(chan Fragment, len(s.Fragments)+1)
	go func() {
		defer close(out)
		for _, text := range s.Fragments {
			select {
			case out <- Fragment{Text: text}:
			case <-ctx.Done():
				return
			}
		}
		if s.Err != nil {
			select {
			case out <- Fragment{Err: s.Err}:
			case <-ctx.Done():
			}
		}
	}()
	return out, nil
}

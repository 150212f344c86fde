package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Command 統合コマンドインターフェース
type Command interface {
	Name() string
	Aliases() []string
	Description() string
	// Execute 引数を受け取り応答を返す。利用者の入力ミスは *UserError で返す
	Execute(ctx context.Context, args []string) (*Response, error)
	// スラッシュコマンド定義（nilを返すとスラッシュコマンドとして登録されない）
	SlashDefinition() *discordgo.ApplicationCommand
}

// Attachment 応答に添付するファイル
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// Response テキストまたは添付ファイル付きの応答
type Response struct {
	Content string
	File    *Attachment
}

// UserError 利用者に見せてよいエラー
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// Registry コマンドの登録と管理（登録順を保持）
type Registry struct {
	prefix   string
	commands []Command
	lookup   map[string]Command
}

// NewRegistry 新しいRegistryを作成
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		lookup: make(map[string]Command),
	}
}

// Prefix テキストコマンドのプレフィックス
func (r *Registry) Prefix() string {
	return r.prefix
}

// Register コマンドを名前と別名で登録
func (r *Registry) Register(cmd Command) {
	r.commands = append(r.commands, cmd)
	r.lookup[strings.ToLower(cmd.Name())] = cmd
	for _, alias := range cmd.Aliases() {
		r.lookup[strings.ToLower(alias)] = cmd
	}
}

// Get 名前または別名でコマンドを取得
func (r *Registry) Get(name string) (Command, bool) {
	cmd, exists := r.lookup[strings.ToLower(name)]
	return cmd, exists
}

// All 登録順の全コマンド
func (r *Registry) All() []Command {
	return append([]Command(nil), r.commands...)
}

// GetSlashDefinitions スラッシュコマンド定義を取得
func (r *Registry) GetSlashDefinitions() []*discordgo.ApplicationCommand {
	defs := make([]*discordgo.ApplicationCommand, 0, len(r.commands))
	for _, cmd := range r.commands {
		if def := cmd.SlashDefinition(); def != nil {
			defs = append(defs, def)
		}
	}
	return defs
}

// NotRecognizedMessage 未知のコマンドへの応答
func (r *Registry) NotRecognizedMessage() string {
	return "I don't recognize that command. Use " + r.prefix + "help for a list of possible commands."
}

// Dispatch コマンドを実行する。
// 未知のコマンドと *UserError は応答に変換し、それ以外のエラーはそのまま返す
func (r *Registry) Dispatch(ctx context.Context, name string, args []string) (*Response, error) {
	cmd, exists := r.Get(name)
	if !exists {
		return &Response{Content: r.NotRecognizedMessage()}, nil
	}

	resp, err := cmd.Execute(ctx, args)
	if err != nil {
		var userErr *UserError
		if errors.As(err, &userErr) {
			return &Response{Content: userErr.Message}, nil
		}
		return nil, err
	}
	return resp, nil
}

package version

const (
	// Botのバージョン番号
	Version = "1.0.0"

	// Name Botの表示名
	Name = "Discovir"

	// Description helpの先頭に出す説明文
	Description = "A bot which provides graphical COVID data upon request."
)

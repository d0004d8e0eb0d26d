package bookmark

import (
	"github.com/spf13/cobra"
)

// BookmarkCmd - родительская команда для закладок
var BookmarkCmd = &cobra.Command{
	Use:   "bookmark",
	Short: "Управление закладками",
}

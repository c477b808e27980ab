package testing

import (
	"os"
	"path/filepath"

	"github.com/imamik/create-bluewaves-app/internal/util/shell"
)

// ScaffoldPackageJSON is a trimmed package.json as create-next-app writes it.
const ScaffoldPackageJSON = `{
  "name": "test-app",
  "version": "0.1.0",
  "private": true,
  "scripts": {
    "dev": "next dev",
    "build": "next build",
    "start": "next start",
    "lint": "next lint"
  },
  "dependencies": {
    "next": "15.0.0",
    "react": "19.0.0",
    "react-dom": "19.0.0"
  }
}
`

// ScaffoldFixture fakes the project tree create-next-app produces.
type ScaffoldFixture struct {
	// ProjectPath is where the project is created.
	ProjectPath string
}

// NewScaffoldFixture creates a fixture for the project at path.
func NewScaffoldFixture(path string) *ScaffoldFixture {
	return &ScaffoldFixture{ProjectPath: path}
}

// Scaffold is a CommandHook that writes the scaffolded files.
func (f *ScaffoldFixture) Scaffold(_ shell.Command) error {
	files := map[string]string{
		"package.json":        ScaffoldPackageJSON,
		"tailwind.config.ts":  "export default {}\n",
		"src/app/globals.css": "@tailwind base;\n",
		"src/app/page.tsx":    "export default function Home() { return null }\n",
		"src/app/layout.tsx":  "export default function RootLayout() { return null }\n",
		"next.config.ts":      "export default {}\n",
		"public/next.svg":     "<svg/>\n",
		"src/app/favicon.ico": "",
		"tsconfig.json":       "{}\n",
		".gitignore":          "node_modules\n",
		"eslint.config.mjs":   "export default []\n",
		"postcss.config.mjs":  "export default {}\n",
		"README.md":           "# create-next-app\n",
	}
	for name, content := range files {
		path := filepath.Join(f.ProjectPath, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// Package layout содержит зашитое описание структуры проекта finance-api.
package layout

import "apiscaffold/internal/tree"

// ProjectName — каталог, который создаётся внутри базового пути.
const ProjectName = "finance-api"

// FinanceAPI возвращает описание каркаса finance-api. Каждый вызов строит
// новое значение, так что вызывающий код не может испортить общее описание.
func FinanceAPI() tree.Tree {
	return tree.Tree{
		Root: ProjectName,
		Nodes: []tree.Node{
			tree.Dir("src",
				tree.FileList("config",
					"database.ts",
					"swagger.ts",
				),
				tree.FileList("controllers",
					"auth.controller.ts",
					"account.controller.ts",
					"transaction.controller.ts",
					"budget.controller.ts",
					"debt.controller.ts",
					"guarantee.controller.ts",
				),
				tree.FileList("services",
					"auth.service.ts",
					"account.service.ts",
					"transaction.service.ts",
				),
				tree.FileList("repositories",
					"user.repository.ts",
					"account.repository.ts",
					"transaction.repository.ts",
				),
				tree.FileList("middleware",
					"auth.middleware.ts",
					"errorHandler.middleware.ts",
				),
				tree.FileList("routes",
					"auth.routes.ts",
					"account.routes.ts",
					"transaction.routes.ts",
					"budget.routes.ts",
					"debt.routes.ts",
					"guarantee.routes.ts",
				),
				tree.FileList("models", "types.ts"),
				tree.FileList("utils",
					"jwt.util.ts",
					"validation.util.ts",
				),
				tree.File("app.ts"),
			),
			tree.Dir("prisma",
				tree.File("schema.prisma"),
			),
			tree.File(".env.example"),
			tree.File(".gitignore"),
			tree.File("package.json"),
			tree.File("tsconfig.json"),
			tree.File("README.md"),
		},
	}
}

// Package cli реализует командный интерфейс (CLI) клиентского приложения StockKeeper.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локальных учётных данных (токен сессии) из конфигурационного файла;
//   - загрузку локального кэша товаров из products-файла;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/api"
	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/config"
	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/memory"
	serr "github.com/IvanChernomyrdin/go-stockkeeper/internal/shared/errors"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// В структуре хранятся параметры подключения к серверу, загруженные учётные
// данные и локальный кэш товаров. Экземпляр App создаётся при построении
// root-команды и передаётся в подкоманды.
type App struct {
	// ServerURL — базовый URL сервера StockKeeper (например, "http://127.0.0.1:8080").
	ServerURL string

	// CredsPath — путь к файлу с сохранённым токеном сессии.
	CredsPath string
	// Creds — загруженные учётные данные из файла конфигурации.
	// Может быть nil, если загрузка не выполнялась или завершилась ошибкой.
	Creds *config.Credentials

	// ProductsPath — путь к файлу локального кэша товаров.
	ProductsPath string
	// Products — локальный кэш товаров (заполняется из файла и командой sync).
	Products *memory.ProductsStore
}

// requireSession проверяет, что пользователь залогинен.
//
// Токен только проверяется на наличие: валидность и срок действия определяет
// сервер при первом же запросе.
func (a *App) requireSession() error {
	if a.Creds == nil || a.Creds.Token == "" {
		return fmt.Errorf("%w: no session token, run: stockkeeper login", serr.ErrNotLoggedIn)
	}
	return nil
}

// handleAPIError обрабатывает ошибку запроса к серверу.
//
// Если сервер ответил 401 — токен истёк или недействителен: локальная сессия
// очищается и пользователю предлагается залогиниться заново. Прочие ошибки
// (сетевые, 4xx/5xx) возвращаются как есть и сессию НЕ трогают.
func (a *App) handleAPIError(err error) error {
	if api.IsUnauthorized(err) {
		_ = config.Clear(a.CredsPath)
		if a.Creds != nil {
			a.Creds.Token = ""
		}
		return fmt.Errorf("session expired or invalid, run: stockkeeper login")
	}
	return err
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE выполняется инициализация состояния приложения:
// определяется путь к файлу учётных данных, загружается сохранённый токен
// и локальный кэш товаров.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{
		ServerURL: "http://127.0.0.1:8080",
		Products:  memory.NewProducts(),
	}

	cmd := &cobra.Command{
		Use:   "stockkeeper",
		Short: "StockKeeper CLI — учёт товаров на складе",
		Long: `StockKeeper CLI.

Команды:
  register   Регистрация нового пользователя
  login      Логин (получить токен сессии, живёт 24 часа)
  logout     Выход (удалить локальный токен)
  profile    Профиль текущего пользователя
  sync       Синхронизация локального списка товаров с сервером
  add        Создать товар
  list       Список товаров (фильтр и сортировка — локально)
  get        Один товар по ID
  update     Обновить товар (полная замена полей)
  delete     Удалить товар
  dashboard  Сводка по складу (количество, low stock, общая стоимость)
  version    Версия и дата сборки

Примеры:

Регистрация:
  stockkeeper register --name "Иван" --email test@example.com --password StrongPass123

Логин:
  stockkeeper login --email test@example.com
  (пароль запрашивается скрытым вводом, токен сохраняется в локальном конфиге)

Работа с товарами:
  stockkeeper sync
  stockkeeper list --search болт --sort lowQuantity
  stockkeeper add --name "Болт М8" --price 3.5 --quantity 120
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			app.CredsPath = p

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return err
			}
			app.Creds = creds

			pp, err := memory.DefaultProductsPath()
			if err != nil {
				return err
			}
			app.ProductsPath = pp

			return memory.LoadFromFile(app.ProductsPath, app.Products)
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", "http://127.0.0.1:8080", "server base URL")

	cmd.AddCommand(NewRegisterCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewLogoutCmd(app))
	cmd.AddCommand(NewProfileCmd(app))
	cmd.AddCommand(NewSyncCmd(app))
	cmd.AddCommand(ProductAdd(app))
	cmd.AddCommand(ProductList(app))
	cmd.AddCommand(ProductGet(app))
	cmd.AddCommand(ProductUpdate(app))
	cmd.AddCommand(ProductDelete(app))
	cmd.AddCommand(NewDashboardCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

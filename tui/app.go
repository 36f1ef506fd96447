package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cinemaseat-cli/model"
	"cinemaseat-cli/service"
	"cinemaseat-cli/store"
	"cinemaseat-cli/ticket"
)

type appState int

const (
	stateLoadingMovies appState = iota
	stateSelectMovie
	stateLoadingShows
	stateSelectShow
	stateLoadingSeats
	stateSeatMap
	stateSubmitting
	stateLogin
	stateLoadingHistory
	stateHistory
	stateError
)

type appModel struct {
	client *service.Client

	state     appState
	lastState appState
	err       error

	width  int
	height int

	// nav guards against stale async results: every movie/show/cinema
	// change bumps it, and fetch results tagged with an older value
	// are dropped on arrival.
	nav int

	movies []model.Movie
	movie  model.Movie
	show   model.Show
	grid   seatGrid

	user   *model.User
	notice string

	movieList   list.Model
	showList    list.Model
	historyList list.Model

	historyStatus string
	historyReturn appState

	loginUser   textinput.Model
	loginPass   textinput.Model
	loginFocus  int
	loginReturn appState

	submitting bool

	spinner spinner.Model
}

type errMsg struct {
	err            error
	returnState    appState
	returnStateSet bool
}

type meMsg struct {
	user *model.User
}

type moviesMsg struct {
	nav    int
	movies []model.Movie
	err    error
}

type showsMsg struct {
	nav   int
	shows []model.Show
	err   error
}

type seatsMsg struct {
	nav   int
	seats []model.Seat
	err   error
}

type loginDoneMsg struct {
	err error
}

type bookingDoneMsg struct {
	nav     int
	outcome service.BookingOutcome
	err     error
}

type historyMsg struct {
	bookings      []model.Booking
	loginRequired bool
	err           error
}

type exportMsg struct {
	path string
	err  error
}

func New(client *service.Client) tea.Model {
	m := appModel{
		client: client,
		state:  stateLoadingMovies,
		grid:   newSeatGrid(nil),
	}

	m.movieList = newList("Select Movie")
	m.showList = newList("Select Show")
	m.historyList = newList("My Bookings")

	m.loginUser = textinput.New()
	m.loginUser.Placeholder = "username"
	m.loginUser.CharLimit = 64
	m.loginPass = textinput.New()
	m.loginPass.Placeholder = "password"
	m.loginPass.CharLimit = 128
	m.loginPass.EchoMode = textinput.EchoPassword
	m.loginPass.EchoCharacter = '•'

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.fetchMeCmd(), m.fetchMoviesCmd(m.nav), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.state == stateLogin {
			return m.updateLogin(msg)
		}
		if m.handleFilterInput(msg) {
			return m, nil
		}
		next, cmd, handled := m.handleKey(msg)
		if handled {
			return next, cmd
		}
		m = next

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.isLoadingState() {
			return m, cmd
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		if msg.returnStateSet {
			m.lastState = msg.returnState
		} else {
			m.lastState = recoverStateFrom(m.state)
		}
		m.state = stateError
		return m, nil

	case meMsg:
		m.user = msg.user
		return m, nil

	case moviesMsg:
		if msg.nav != m.nav {
			return m, nil
		}
		if msg.err != nil {
			return m, errCmd(msg.err)
		}
		m.movies = msg.movies
		m.movieList.SetItems(buildMovieItems(msg.movies))
		if len(msg.movies) == 0 {
			m.notice = "No movies found."
		}
		m.state = stateSelectMovie
		return m, nil

	case showsMsg:
		if msg.nav != m.nav {
			return m, nil
		}
		if msg.err != nil {
			return m, errWithOptionsCmd(msg.err, stateSelectMovie)
		}
		m.showList.SetItems(buildShowItems(msg.shows))
		if len(msg.shows) == 0 {
			m.notice = "No shows."
		}
		m.state = stateSelectShow
		return m, nil

	case seatsMsg:
		if msg.nav != m.nav {
			return m, nil
		}
		if msg.err != nil {
			if m.state != stateLoadingSeats {
				return m, nil
			}
			return m, errWithOptionsCmd(msg.err, stateSelectShow)
		}
		m.grid = newSeatGrid(msg.seats)
		if m.state == stateLoadingSeats {
			m.state = stateSeatMap
		}
		return m, nil

	case loginDoneMsg:
		if msg.err != nil {
			m.notice = "Login failed"
			return m, nil
		}
		m.notice = "Logged in"
		_ = store.RememberUsername(m.loginUser.Value())
		m.state = m.loginReturn
		// a history view opened while signed out is stale now
		if m.loginReturn == stateHistory || m.loginReturn == stateLoadingHistory {
			m.state = stateLoadingHistory
			return m, tea.Batch(m.fetchMeCmd(), m.fetchHistoryCmd(), m.spinner.Tick)
		}
		return m, m.fetchMeCmd()

	case bookingDoneMsg:
		m.submitting = false
		if msg.nav != m.nav {
			return m, nil
		}
		if msg.err != nil {
			return m, errWithOptionsCmd(msg.err, stateSeatMap)
		}
		m.notice = msg.outcome.Summary()
		m.grid.clearSelection()
		// the user may have browsed to history while the submission
		// was in flight; refresh both views in place instead of
		// yanking them back to the seat map
		if m.state == stateHistory || m.state == stateLoadingHistory {
			if m.historyReturn == stateSubmitting {
				m.historyReturn = stateSeatMap
			}
			return m, tea.Batch(m.fetchSeatsCmd(m.nav, m.show.ID), m.fetchHistoryCmd())
		}
		// always re-fetch availability after a submission attempt
		m.state = stateLoadingSeats
		return m, tea.Batch(m.fetchSeatsCmd(m.nav, m.show.ID), m.spinner.Tick)

	case historyMsg:
		switch {
		case msg.loginRequired:
			m.historyStatus = "Login required."
			m.historyList.SetItems(nil)
		case msg.err != nil:
			m.historyStatus = "Network error."
			m.historyList.SetItems(nil)
		case len(msg.bookings) == 0:
			m.historyStatus = "No bookings yet."
			m.historyList.SetItems(nil)
		default:
			m.historyStatus = ""
			m.historyList.SetItems(buildBookingItems(msg.bookings))
		}
		m.state = stateHistory
		return m, nil

	case exportMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("Export failed: %v", msg.err)
		} else {
			m.notice = fmt.Sprintf("Saved %s", msg.path)
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case stateSelectMovie:
		m.movieList, cmd = m.movieList.Update(msg)
	case stateSelectShow:
		m.showList, cmd = m.showList.Update(msg)
	case stateHistory:
		m.historyList, cmd = m.historyList.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateLoadingMovies, stateLoadingShows, stateLoadingSeats, stateLoadingHistory, stateSubmitting:
		return header + "\n\n" + m.loadingView()
	case stateSelectMovie:
		return header + "\n\n" + m.movieList.View()
	case stateSelectShow:
		return header + "\n\n" + m.showList.View()
	case stateSeatMap:
		return header + "\n\n" + m.grid.render()
	case stateLogin:
		return header + "\n\n" + m.loginView()
	case stateHistory:
		if m.historyStatus != "" {
			return header + "\n\n" + hint(m.historyStatus)
		}
		return header + "\n\n" + m.historyList.View()
	case stateError:
		return header + "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()) + "\n\n" + hint("Press esc to go back or ctrl+c to quit.")
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("CinemaSeat")
	sub := []string{}
	if m.user != nil && m.user.Username != "" {
		badge := m.user.Username
		if exp, ok := m.client.TokenExpiry(); ok {
			badge += fmt.Sprintf(" (session until %s)", exp.Local().Format("15:04"))
		}
		sub = append(sub, badge)
	} else if m.client.LoggedIn() {
		sub = append(sub, "signed in")
	} else {
		sub = append(sub, "signed out")
	}
	if m.movie.Title != "" {
		sub = append(sub, fmt.Sprintf("Movie: %s", m.movie.Title))
	}
	if m.show.ID != 0 {
		sub = append(sub, fmt.Sprintf("Show: %s", showLabel(m.show)))
	}
	if m.state == stateSeatMap || m.state == stateSubmitting {
		sub = append(sub, fmt.Sprintf("Selected: %d", m.grid.selectedCount()))
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit • esc back • type to filter • ctrl+l sign in • ctrl+o sign out • ctrl+b bookings"
	switch m.state {
	case stateSelectMovie:
		hints = "ctrl+c quit • type to filter • enter select movie • ctrl+r reset cinema • ctrl+l sign in • ctrl+b bookings"
	case stateSelectShow:
		hints = "ctrl+c quit • esc back • type to filter • enter select show • ctrl+l sign in • ctrl+b bookings"
	case stateSeatMap:
		pay := "p book selected"
		if !m.payAllowed() {
			if !m.client.LoggedIn() {
				pay = "sign in to book seats"
			} else if m.grid.selectedCount() == 0 {
				pay = "pick seats to book"
			}
		}
		hints = "ctrl+c quit • esc back • arrows move • space toggle seat • r refresh • " + pay
	case stateHistory:
		hints = "ctrl+c quit • esc back • type to filter • ctrl+e export ticket"
	case stateLogin:
		hints = "enter submit • tab switch field • esc cancel"
	}

	noticeLine := ""
	if m.notice != "" {
		noticeLine = "\n" + hint(m.notice)
	}
	filterLine := ""
	if listPtr := m.activeList(); listPtr != nil {
		if filter := listPtr.FilterValue(); filter != "" {
			filterLine = "\n" + hint(fmt.Sprintf("Filter: %s", filter))
		}
	}
	return title + meta + noticeLine + filterLine + "\n" + hint(hints)
}

func (m appModel) loadingView() string {
	title := "Loading"
	switch m.state {
	case stateLoadingMovies:
		title = "Loading movies"
	case stateLoadingShows:
		title = "Loading shows"
	case stateLoadingSeats:
		title = "Loading seats"
	case stateLoadingHistory:
		title = "Loading bookings"
	case stateSubmitting:
		title = fmt.Sprintf("Booking %d seat(s)", m.grid.selectedCount())
	}
	return fmt.Sprintf("%s %s\n\n%s", m.spinner.View(), title, hint("Fetching data..."))
}

func (m appModel) loginView() string {
	labelStyle := lipgloss.NewStyle().Bold(true)
	return labelStyle.Render("Sign in") + "\n\n" +
		"Username: " + m.loginUser.View() + "\n" +
		"Password: " + m.loginPass.View()
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		next, cmd := m.goBack()
		return next, cmd, true
	case "ctrl+l":
		return m.openLogin(), nil, true
	case "ctrl+o":
		next, cmd := m.logout()
		return next, cmd, true
	case "ctrl+b":
		return m.openHistory()
	case "ctrl+r":
		return m.resetCinema()
	case "ctrl+e":
		if m.state == stateHistory {
			return m.exportSelectedBooking()
		}
	}

	if m.state == stateSeatMap {
		return m.handleSeatMapKey(msg)
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateSelectMovie:
			item, ok := m.movieList.SelectedItem().(movieItem)
			if !ok {
				return m, nil, true
			}
			return m.pickMovie(item.movie)
		case stateSelectShow:
			item, ok := m.showList.SelectedItem().(showItem)
			if !ok {
				return m, nil, true
			}
			return m.pickShow(item.show)
		}
	}
	return m, nil, false
}

func (m appModel) handleSeatMapKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	switch msg.String() {
	case "left", "h":
		m.grid.moveCursor(-1)
		return m, nil, true
	case "right", "l":
		m.grid.moveCursor(1)
		return m, nil, true
	case "up", "k":
		m.grid.moveCursorRow(-1)
		return m, nil, true
	case "down", "j":
		m.grid.moveCursorRow(1)
		return m, nil, true
	case " ", "enter", "x":
		switch m.grid.toggleAtCursor() {
		case toggleLimit:
			m.notice = fmt.Sprintf("You can select a maximum of %d seats.", service.MaxSeatsPerBooking)
		case toggleAdded, toggleRemoved:
			m.notice = ""
		}
		return m, nil, true
	case "r":
		m.grid.clearSelection()
		m.state = stateLoadingSeats
		return m, tea.Batch(m.fetchSeatsCmd(m.nav, m.show.ID), m.spinner.Tick), true
	case "p":
		return m.submitBooking()
	}
	return m, nil, true
}

func (m appModel) submitBooking() (appModel, tea.Cmd, bool) {
	if m.submitting {
		return m, nil, true
	}
	if !m.client.LoggedIn() {
		m.notice = "Please sign in first."
		return m, nil, true
	}
	if !m.payAllowed() {
		return m, nil, true
	}
	numbers := m.grid.selectedNumbers()
	m.submitting = true
	m.notice = fmt.Sprintf("Booking %d seat(s)...", len(numbers))
	m.state = stateSubmitting
	return m, tea.Batch(m.submitCmd(m.nav, m.show.ID, numbers), m.spinner.Tick), true
}

// payAllowed is the submit-eligibility predicate over live state.
func (m appModel) payAllowed() bool {
	return payEnabled(m.client.LoggedIn(), m.grid.selectedCount(), m.show.ID != 0) && !m.submitting
}

func (m appModel) pickMovie(movie model.Movie) (appModel, tea.Cmd, bool) {
	m.nav++
	m.movie = movie
	m.show = model.Show{}
	m.grid = newSeatGrid(nil)
	m.notice = ""
	m.state = stateLoadingShows
	return m, tea.Batch(m.fetchShowsCmd(m.nav, movie.ID), m.spinner.Tick), true
}

func (m appModel) pickShow(show model.Show) (appModel, tea.Cmd, bool) {
	m.nav++
	m.show = show
	m.grid = newSeatGrid(nil)
	m.notice = ""
	m.state = stateLoadingSeats
	return m, tea.Batch(m.fetchSeatsCmd(m.nav, show.ID), m.spinner.Tick), true
}

func (m appModel) resetCinema() (appModel, tea.Cmd, bool) {
	m.nav++
	m.movie = model.Movie{}
	m.show = model.Show{}
	m.grid = newSeatGrid(nil)
	m.notice = ""
	m.state = stateLoadingMovies
	return m, tea.Batch(m.fetchMoviesCmd(m.nav), m.spinner.Tick), true
}

func (m appModel) openLogin() appModel {
	if m.state == stateLogin {
		return m
	}
	m.loginReturn = m.state
	m.state = stateLogin
	m.loginUser.SetValue(store.LastUsername())
	m.loginPass.SetValue("")
	m.loginFocus = 0
	m.loginUser.Focus()
	m.loginPass.Blur()
	if m.loginUser.Value() != "" {
		m.loginFocus = 1
		m.loginUser.Blur()
		m.loginPass.Focus()
	}
	return m
}

func (m appModel) logout() (appModel, tea.Cmd) {
	_ = m.client.Logout()
	m.user = nil
	m.notice = "Logged out"
	// a history view belongs to the session that fetched it
	if m.state == stateHistory || m.state == stateLoadingHistory {
		m.historyList.SetItems(nil)
		m.state = stateLoadingHistory
		return m, tea.Batch(m.fetchHistoryCmd(), m.spinner.Tick)
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = m.loginReturn
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.loginFocus = 1 - m.loginFocus
		if m.loginFocus == 0 {
			m.loginUser.Focus()
			m.loginPass.Blur()
		} else {
			m.loginUser.Blur()
			m.loginPass.Focus()
		}
		return m, nil
	case "enter":
		if m.loginFocus == 0 {
			m.loginFocus = 1
			m.loginUser.Blur()
			m.loginPass.Focus()
			return m, nil
		}
		username := strings.TrimSpace(m.loginUser.Value())
		password := m.loginPass.Value()
		if username == "" || password == "" {
			m.notice = "Username and password are required."
			return m, nil
		}
		return m, m.loginCmd(username, password)
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.loginUser, cmd = m.loginUser.Update(msg)
	} else {
		m.loginPass, cmd = m.loginPass.Update(msg)
	}
	return m, cmd
}

func (m appModel) openHistory() (appModel, tea.Cmd, bool) {
	if m.state == stateHistory || m.state == stateLoadingHistory {
		return m, nil, true
	}
	m.historyReturn = m.state
	m.state = stateLoadingHistory
	return m, tea.Batch(m.fetchHistoryCmd(), m.spinner.Tick), true
}

func (m appModel) exportSelectedBooking() (appModel, tea.Cmd, bool) {
	item, ok := m.historyList.SelectedItem().(bookingItem)
	if !ok {
		return m, nil, true
	}
	username := ""
	if m.user != nil {
		username = m.user.Username
	}
	return m, exportCmd(item.booking, username), true
}

func (m appModel) goBack() (appModel, tea.Cmd) {
	switch m.state {
	case stateSelectShow:
		m.state = stateSelectMovie
	case stateSeatMap:
		m.state = stateSelectShow
	case stateHistory:
		m.state = m.historyReturn
	case stateError:
		m.state = m.lastState
	default:
		return m, nil
	}
	return m, nil
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	current := listPtr.FilterValue()
	listPtr.SetFilterText(current + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateSelectMovie:
		return &m.movieList
	case stateSelectShow:
		return &m.showList
	case stateHistory:
		return &m.historyList
	default:
		return nil
	}
}

func (m appModel) isLoadingState() bool {
	return m.state == stateLoadingMovies ||
		m.state == stateLoadingShows ||
		m.state == stateLoadingSeats ||
		m.state == stateLoadingHistory ||
		m.state == stateSubmitting
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
	m.showList.SetSize(m.width, h)
	m.historyList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err}
	}
}

func errWithOptionsCmd(err error, returnState appState) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err, returnState: returnState, returnStateSet: true}
	}
}

func recoverStateFrom(state appState) appState {
	switch state {
	case stateLoadingMovies:
		return stateSelectMovie
	case stateLoadingShows:
		return stateSelectMovie
	case stateLoadingSeats:
		return stateSelectShow
	case stateSubmitting:
		return stateSeatMap
	case stateLoadingHistory, stateHistory:
		return stateSelectMovie
	default:
		return state
	}
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

func (m appModel) fetchMeCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if !client.LoggedIn() {
			return meMsg{user: nil}
		}
		user, err := client.Me(context.Background())
		if err != nil {
			// any failure means "treat as logged out", not a fault
			return meMsg{user: nil}
		}
		return meMsg{user: &user}
	}
}

func (m appModel) fetchMoviesCmd(nav int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if cached, fresh, err := store.LoadMovieCache(); err == nil && fresh && len(cached) > 0 {
			return moviesMsg{nav: nav, movies: cached}
		}
		movies, err := client.Movies(context.Background())
		if err == nil && len(movies) > 0 {
			_ = store.SaveMovieCache(movies)
		}
		return moviesMsg{nav: nav, movies: movies, err: err}
	}
}

func (m appModel) fetchShowsCmd(nav int, movieID int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		shows, err := client.Shows(context.Background(), movieID)
		return showsMsg{nav: nav, shows: shows, err: err}
	}
}

func (m appModel) fetchSeatsCmd(nav int, showID int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		seats, err := client.Seats(context.Background(), showID)
		return seatsMsg{nav: nav, seats: seats, err: err}
	}
}

func (m appModel) loginCmd(username string, password string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.Login(context.Background(), username, password)
		return loginDoneMsg{err: err}
	}
}

func (m appModel) submitCmd(nav int, showID int, numbers []int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		outcome, err := client.BookSeats(context.Background(), showID, numbers)
		return bookingDoneMsg{nav: nav, outcome: outcome, err: err}
	}
}

func (m appModel) fetchHistoryCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		bookings, err := client.MyBookings(context.Background())
		if err != nil {
			if apiFailure(err) {
				return historyMsg{loginRequired: true}
			}
			return historyMsg{err: err}
		}
		return historyMsg{bookings: bookings}
	}
}

func exportCmd(booking model.Booking, username string) tea.Cmd {
	return func() tea.Msg {
		path, err := ticket.ExportFile(booking, username)
		return exportMsg{path: path, err: err}
	}
}

// apiFailure tells an API-side rejection (login required) apart from
// a transport failure (network error).
func apiFailure(err error) bool {
	var apiErr *service.APIError
	return errors.As(err, &apiErr)
}

type movieItem struct {
	movie model.Movie
}

func (m movieItem) Title() string {
	return m.movie.Title
}

func (m movieItem) Description() string {
	parts := []string{}
	if m.movie.Language != "" {
		parts = append(parts, m.movie.Language)
	}
	if m.movie.Certificate != "" {
		parts = append(parts, m.movie.Certificate)
	}
	return strings.Join(parts, " • ")
}

func (m movieItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{m.movie.Title, m.movie.Language, m.movie.Certificate}, " "))
}

type showItem struct {
	show model.Show
}

func (s showItem) Title() string {
	return showLabel(s.show)
}

func (s showItem) Description() string {
	return fmt.Sprintf("Show #%d", s.show.ID)
}

func (s showItem) FilterValue() string {
	return strings.ToLower(s.Title())
}

func showLabel(show model.Show) string {
	if show.StartTime.IsZero() {
		return fmt.Sprintf("Show %d", show.ID)
	}
	return show.StartTime.Local().Format("Mon, 02 Jan 15:04")
}

type bookingItem struct {
	booking model.Booking
}

func (b bookingItem) Title() string {
	title := b.booking.MovieTitle
	if title == "" {
		title = "Movie"
	}
	return fmt.Sprintf("#%d • %s", b.booking.ID, title)
}

func (b bookingItem) Description() string {
	when := fmt.Sprintf("Show #%d", b.booking.ShowID)
	if b.booking.ShowStartTime != nil {
		when = b.booking.ShowStartTime.Local().Format("Mon, 02 Jan 2006 15:04")
	}
	return fmt.Sprintf("Seat %d • %s", int(b.booking.SeatNumber), when)
}

func (b bookingItem) FilterValue() string {
	return strings.ToLower(b.Title())
}

func buildMovieItems(movies []model.Movie) []list.Item {
	items := make([]list.Item, 0, len(movies))
	for _, movie := range movies {
		items = append(items, movieItem{movie: movie})
	}
	return items
}

func buildShowItems(shows []model.Show) []list.Item {
	items := make([]list.Item, 0, len(shows))
	for _, show := range shows {
		items = append(items, showItem{show: show})
	}
	return items
}

func buildBookingItems(bookings []model.Booking) []list.Item {
	items := make([]list.Item, 0, len(bookings))
	for _, booking := range bookings {
		items = append(items, bookingItem{booking: booking})
	}
	return items
}

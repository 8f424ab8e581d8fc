package mail

type WelcomeEmailData struct {
	Name     string
	Business string
}

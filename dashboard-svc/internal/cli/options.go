package cli

// Options is the root of the dashboard CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	API string `long:"api" env:"FOODS_API_URL" default:"http://localhost:3333" description:"Base URL of the foods backend"`

	List   ListCmd   `command:"list"   description:"Show all foods"`
	Add    AddCmd    `command:"add"    description:"Add a food; it starts available"`
	Edit   EditCmd   `command:"edit"   description:"Edit name, image, price and description of a food"`
	Toggle ToggleCmd `command:"toggle" description:"Flip the availability of a food"`
	Delete DeleteCmd `command:"delete" description:"Delete a food"`
}

type DraftFlags struct {
	Name        string `long:"name" required:"yes" description:"Food name"`
	Image       string `long:"image" required:"yes" description:"Image URL"`
	Price       string `long:"price" required:"yes" description:"Price, e.g. 19.90"`
	Description string `long:"description" description:"Description"`
}

type IDArg struct {
	ID int `positional-arg-name:"id" required:"yes"`
}

package compose

import "fmt"

// SubscribeForm renders the signup form posting to actionURL. The hidden
// "phone" field is a honeypot: browsers leave it empty, naive bots fill it
// in, and submissions carrying a value are silently discarded.
func SubscribeForm(actionURL, returnURL string) string {
	return fmt.Sprintf(`
    <h1 style="margin:0 0 12px">Subscribe</h1>
    <form method="post" action=%q>
      <p><label>Name<br><input type="text" name="name" autocomplete="name"></label></p>
      <p><label>Email<br><input type="email" name="email" autocomplete="email" required></label></p>
      <p style="position:absolute;left:-9999px" aria-hidden="true">
        <label>Phone<br><input type="text" name="phone" tabindex="-1" autocomplete="off"></label>
      </p>
      <input type="hidden" name="return" value=%q>
      <p><button type="submit">Subscribe</button></p>
    </form>
  `, actionURL, returnURL)
}

package pages

// SiteCSS is the shared stylesheet served at /assets/site.css.
const SiteCSS = `*, *::before, *::after { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body { margin: 0; background: #000; color: #fff; font-family: var(--font-body); overflow-x: hidden; }
a { color: inherit; text-decoration: none; }
.font-logo { font-family: var(--font-the-seasons); font-weight: 400; }
.font-body { font-family: var(--font-body); }

.site-header { position: fixed; top: 0; left: 0; width: 100%; z-index: 40; display: flex; align-items: center;
  justify-content: space-between; padding: 1rem 1.5rem; border-bottom: 1px solid rgba(255,255,255,.1); }
.logo { font-size: 1.5rem; letter-spacing: -.02em; }
.nav-desktop { display: flex; gap: 2rem; }
.nav-link { font-size: 1.125rem; color: rgba(255,255,255,.9); transition: color .2s; }
.nav-link:hover { color: #fff; }
.nav-mobile { display: none; position: fixed; top: 1rem; right: 1rem; z-index: 50; }
.nav-mobile summary { list-style: none; cursor: pointer; }
.nav-mobile summary::-webkit-details-marker { display: none; }
.nav-mobile-panel { position: fixed; top: 0; right: 0; height: 100%; width: 16rem; padding: 4.5rem 1.5rem;
  display: flex; flex-direction: column; gap: 1.5rem; background: rgba(0,0,0,.95); backdrop-filter: blur(16px); }
.icon { width: 1.5rem; height: 1.5rem; }
@media (max-width: 767px) { .nav-desktop { display: none; } .nav-mobile { display: block; } }

.btn { display: inline-block; padding: .75rem 2rem; border-radius: 9999px; border: 1px solid #fff; font-weight: 600;
  transition: all .3s; cursor: pointer; font-size: 1rem; }
.btn-solid { background: #fff; color: #000; }
.btn-solid:hover { background: #000; color: #fff; transform: scale(1.05); }
.btn-ghost { background: transparent; color: #fff; }
.btn-ghost:hover { background: #fff; color: #000; transform: scale(1.05); }
.btn:disabled { opacity: .5; cursor: not-allowed; }

.home { position: relative; min-height: 200vh; }
.hero { position: sticky; top: 0; height: 100vh; display: flex; align-items: center; justify-content: center; padding: 0 2rem; }
.hero-copy { position: relative; z-index: 10; max-width: 42rem; }
.hero-headline { font-size: clamp(1.5rem, 5vw, 3.75rem); line-height: 1.1; letter-spacing: -1px;
  text-shadow: 0 2px 32px #fff2; margin: 0; }
.caret { display: inline-block; width: .5rem; height: 1.75rem; margin-left: .25rem; vertical-align: middle;
  background: #fff; animation: blink 1s steps(2, start) infinite; }
@keyframes blink { to { visibility: hidden; } }
.hero-subtitle { font-size: 1.125rem; color: rgba(255,255,255,.9); margin-top: 1rem; }
.hero-actions { margin-top: 2rem; }
.hero-note { color: rgba(255,255,255,.6); margin-top: .75rem; }
.hero-panels { position: relative; width: 45%; height: 80vh; display: none; perspective: 1000px; }
@media (min-width: 1024px) { .hero-panels { display: block; } }
.panel { position: absolute; width: 240px; height: 480px; transform-style: preserve-3d; }
.px-panel-left { top: 10%; right: 10%; }
.px-panel-right { top: 25%; right: 65%; }
.panel img { width: 100%; height: 100%; object-fit: cover; border-radius: 2rem; box-shadow: 0 20px 40px rgba(0,0,0,.3); }

.section-title { font-size: clamp(1.25rem, 3vw, 2.25rem); margin-bottom: 3rem; text-align: center; }
.offers { position: relative; margin-top: 20vh; min-height: 70vh; text-align: center; padding: 0 1rem; }
.tabs { display: flex; justify-content: center; gap: 4rem; margin-bottom: 2rem; }
.tab { padding: .5rem 2rem; border-radius: .5rem .5rem 0 0; font-size: 1.125rem; border-bottom: 2px solid transparent; }
.tab:hover { border-bottom-color: #fff; }
.tab-active { background: #fff; color: #000; }
.cards { display: flex; flex-wrap: wrap; justify-content: center; gap: 1.5rem; max-width: 80rem; margin: 0 auto; }
.card { position: relative; width: 280px; height: 280px; display: flex; flex-direction: column; align-items: center;
  justify-content: center; padding: 0 1.5rem; background: #000; border: 1px solid rgba(255,255,255,.1);
  border-radius: 1rem; transition: all .3s; overflow: hidden; }
.card:hover { background: #fff; transform: scale(1.05); box-shadow: 0 8px 32px rgba(0,0,0,.25), 0 1.5px 8px #fff2; }
.card-main { font-size: 1.25rem; }
.card-info { opacity: 0; margin-top: 1rem; color: #000; transition: opacity .3s; }
.card:hover .card-main { color: #000; }
.card:hover .card-info { opacity: 1; }

.how { min-height: 100vh; text-align: center; padding: 0 1rem; margin-top: 8rem; }
.timeline { display: flex; flex-wrap: wrap; justify-content: center; align-items: center; margin-bottom: 4rem; }
.dot { width: 2.5rem; height: 2.5rem; border-radius: 9999px; display: flex; align-items: center; justify-content: center;
  font-weight: 600; background: rgba(255,255,255,.2); color: rgba(255,255,255,.5); transition: all .3s; }
.dot-done { background: #fff; color: #000; }
.line { height: .25rem; width: 8rem; background: rgba(255,255,255,.2); }
.line-done { background: #fff; }
.step { min-height: 12rem; }
.step-title { font-size: clamp(1.25rem, 3vw, 1.875rem); }
.step-detail { color: rgba(255,255,255,.8); max-width: 42rem; margin: 0 auto; }
.trust { font-size: 1.25rem; color: rgba(255,255,255,.9); margin-top: 2rem; }

.promise { min-height: 100vh; text-align: center; padding: 8rem 1rem; }
.promise-card { max-width: 56rem; margin: 0 auto; background: #1a1a1a; border-radius: 1.5rem; padding: 4rem;
  border: 1px solid rgba(255,255,255,.1); box-shadow: 0 0 50px rgba(255,255,255,.1), inset 0 0 20px rgba(255,255,255,.05); }
.promise-card h3 { font-size: 1.875rem; line-height: 1.6; }
.promise-card p { font-size: 1.25rem; color: rgba(255,255,255,.8); line-height: 1.6; }
.promise-closing span { display: block; margin-top: 1rem; }
.cta { min-height: 50vh; text-align: center; padding: 8rem 1rem; background: rgba(0,0,0,.2); }
.cta-body { color: rgba(255,255,255,.8); max-width: 42rem; margin: 0 auto 3rem; }
.cta-actions { display: flex; justify-content: center; gap: 1.5rem; flex-wrap: wrap; }

.page { min-height: 100vh; }
.page-hero { min-height: 100vh; display: flex; flex-direction: column; align-items: center; justify-content: center;
  text-align: center; padding: 5rem 2rem 0; max-width: 56rem; margin: 0 auto; }
.page-title { font-size: clamp(1.875rem, 5vw, 3.75rem); margin-bottom: 1.5rem; }
.lead { font-size: 1.25rem; color: rgba(255,255,255,.8); }
.muted { color: rgba(255,255,255,.6); }
.small { font-size: .875rem; }
.vetting, .why, .vision, .ready { padding: 6rem 2rem; max-width: 72rem; margin: 0 auto; text-align: center; }
.band { background: rgba(255,255,255,.05); max-width: none; }
.stages { display: flex; flex-direction: column; gap: 2rem; text-align: left; }
.tile { background: rgba(0,0,0,.2); backdrop-filter: blur(4px); border: 1px solid rgba(255,255,255,.1); border-radius: 1rem; padding: 2rem; }
.stage { display: flex; gap: 1.5rem; align-items: flex-start; }
.stage-number { flex: none; width: 3rem; height: 3rem; border-radius: 9999px; background: rgba(255,255,255,.1);
  display: flex; align-items: center; justify-content: center; font-size: 1.5rem; font-weight: 700; }
.stage-items li { color: rgba(255,255,255,.8); margin: .5rem 0; }
.grid { display: grid; gap: 2rem; grid-template-columns: repeat(auto-fit, minmax(18rem, 1fr)); text-align: left; max-width: 72rem; margin: 0 auto; }

.waitlist { width: 100%; max-width: 28rem; margin: 0 auto; }
.waitlist-row { display: flex; gap: 1rem; flex-wrap: wrap; }
.email-input { flex: 1; min-width: 12rem; padding: .75rem 1.5rem; border-radius: 9999px; background: rgba(255,255,255,.1);
  border: 1px solid rgba(255,255,255,.2); color: #fff; font: inherit; }
.email-input:focus { outline: none; border-color: rgba(255,255,255,.5); }
.roles { display: flex; justify-content: center; gap: 1rem; margin-top: 1rem; }
.role-input { position: absolute; opacity: 0; pointer-events: none; }
.role-pill { padding: .5rem 1.5rem; border-radius: 9999px; border: 1px solid rgba(255,255,255,.3); cursor: pointer; transition: all .3s; }
.role-input:checked + .role-pill { background: #fff; color: #000; }
.label-busy { display: none; }
.htmx-request .label-idle { display: none; }
.htmx-request .label-busy { display: inline; }
.form-error { color: #f87171; margin-top: 1rem; }
.confirmation { background: rgba(255,255,255,.05); border: 1px solid rgba(255,255,255,.1); border-radius: 1rem; padding: 2rem; }

@keyframes rise { from { opacity: 0; transform: translateY(30px); } to { opacity: 1; transform: none; } }
@keyframes pop { from { opacity: 0; transform: scale(.9); } to { opacity: 1; transform: none; } }
.rise { animation: rise .8s ease-out both; }
.rise:nth-child(2) { animation-delay: .2s; }
.rise:nth-child(3) { animation-delay: .4s; }
.rise:nth-child(4) { animation-delay: .6s; }
.pop { animation: pop .4s ease-out both; }
@supports (animation-timeline: view()) {
  .reveal { animation: rise linear both; animation-timeline: view(); animation-range: entry 0% entry 60%; }
}
`
